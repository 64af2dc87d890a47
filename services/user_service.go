package services

import (
	"errors"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"gorm.io/gorm"
)

func GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	Name    *string  `json:"name"`
	Goals   *string  `json:"goals"`
	Phone   *string  `json:"phone"`
	Address *string  `json:"address"`
	Weight  *float64 `json:"weight"`
	Height  *float64 `json:"height"`
}

// UpdateProfile applies only the fields present in the request.
func UpdateProfile(userID uint, input ProfileUpdate) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Goals != nil {
		updates["goals"] = *input.Goals
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Weight != nil {
		updates["weight"] = *input.Weight
	}
	if input.Height != nil {
		updates["height"] = *input.Height
	}

	if len(updates) > 0 {
		if err := config.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func UpdateProfileImage(userID uint, url string) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("image", url).Error
}
