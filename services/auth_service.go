package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Disabled:  false,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}

	return &user, nil
}

// StartMFA issues a fresh code and mails it. The login completes via
// VerifyMFA.
func StartMFA(user *models.User) error {
	code := utils.GenerateMFACode()
	user.MFACode = code
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return utils.SendMFAEmail(user.Email, code)
}

func VerifyMFA(email, code string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return "", errors.New("user not found or disabled")
	}
	if !user.MFAEnabled || user.MFACode == "" || user.MFACode != code {
		return "", errors.New("invalid MFA code")
	}

	user.MFACode = ""
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func StartPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Don't reveal whether the account exists.
		return nil
	}

	token := utils.GenerateRandomToken(8)
	user.ResetToken = token
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, token)
}

func ResetPassword(email, token, newPassword string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND reset_token = ?", email, token).First(&user).Error; err != nil {
		return errors.New("invalid reset token")
	}
	if user.ResetToken == "" {
		return errors.New("invalid reset token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	return config.DB.Save(&user).Error
}
