package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"repair_shop/constants"
	"repair_shop/database"
	"repair_shop/helper"
	"repair_shop/model"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerInput, ok := c.Locals("inputCreateCustomer").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	emailTaken, err := helper.CheckByEmailCustomer(customerInput.Email, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if emailTaken {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, nil)
	}

	hash, err := helper.HashPassword(customerInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, &customerInput)
	newCustomer.Password = hash

	if err := db.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func GetCustomers(c *fiber.Ctx) error {
	db := database.DB

	var customers model.Customers
	query := utils.ApplyPagination(db.Model(&model.Customer{}).Order("id ASC"), c.Query("page"), c.Query("per_page"))
	if err := query.Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customers)
}

func GetCustomerById(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("inputId").(uint)
	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// UpdateCustomer is a full replace: payload carries every field, same
// contract as create.
func UpdateCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("inputId").(uint)
	customerInput, ok := c.Locals("inputCreateCustomer").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	emailTaken, err := helper.CheckByEmailCustomer(customerInput.Email, &customerId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if emailTaken {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, nil)
	}

	copier.Copy(&customer, &customerInput)
	hash, err := helper.HashPassword(customerInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customer.Password = hash

	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func PatchCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("inputId").(uint)
	customerInput, ok := c.Locals("inputPatchCustomer").(model.PatchCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if customerInput.Name == nil && customerInput.Email == nil && customerInput.Phone == nil && customerInput.Password == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FIELDS_TO_UPDATE, nil)
	}

	if customerInput.Name != nil {
		customer.Name = *customerInput.Name
	}
	if customerInput.Email != nil {
		emailTaken, err := helper.CheckByEmailCustomer(*customerInput.Email, &customerId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if emailTaken {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, nil)
		}
		customer.Email = *customerInput.Email
	}
	if customerInput.Phone != nil {
		customer.Phone = *customerInput.Phone
	}
	if customerInput.Password != nil {
		hash, err := helper.HashPassword(*customerInput.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		customer.Password = hash
	}

	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("inputId").(uint)
	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// No cascade on tickets: a customer with open tickets stays.
	var ticketCount int64
	if err := db.Model(&model.Ticket{}).Where("customer_id = ?", customerId).Count(&ticketCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if ticketCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CUSTOMER_HAS_TICKETS, nil)
	}

	// Reset tokens reference the customer and would block the delete.
	if err := db.Where("customer_id = ?", customerId).Delete(&model.PasswordResetToken{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := db.Delete(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("Customer id: %d, successfully deleted.", customerId))
}

// CustomerLogin returns one generic failure for unknown email and wrong
// password alike.
func CustomerLogin(c *fiber.Ctx) error {
	loginInput, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	customer, err := helper.GetCustomerByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil || !helper.CheckPasswordHash(loginInput.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}

	token, err := helper.GenerateToken(customer.ID, constants.ROLE_CUSTOMER)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AuthToken: token})
}

func ChangePasswordCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("customerId").(uint)
	changeInput, ok := c.Locals("inputChangePassword").(model.CustomerChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
	}

	if !helper.CheckPasswordHash(changeInput.CurrentPassword, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}

	hash, err := helper.HashPassword(changeInput.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customer.Password = hash
	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Password updated.")
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB

	forgotInput, ok := c.Locals("inputForgotPassword").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var customer model.Customer
	if err := db.Where("email = ?", forgotInput.Email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		CustomerId: customer.ID,
		Token:      token,
		ExpiresAt:  time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendPasswordResetEmail(customer.Email, token)

	return utils.MessageResponse(c, fiber.StatusOK, "A reset link has been sent to your email.")
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB

	resetInput, ok := c.Locals("inputResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", resetInput.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reset token is invalid or has expired.", err)
	}

	var customer model.Customer
	if err := db.First(&customer, resetToken.CustomerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
	}

	hash, err := helper.HashPassword(resetInput.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customer.Password = hash
	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := db.Delete(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Password has been reset.")
}
