package helper

import (
	"errors"
	"strconv"
	"time"

	"repair_shop/config"
	"repair_shop/database"
	"repair_shop/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
	ErrRoleMismatch = errors.New("token role mismatch")
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues an HS256 token for the given subject and role,
// expiring one hour after issue.
func GenerateToken(subjectId uint, role string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	now := time.Now()
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = strconv.FormatUint(uint64(subjectId), 10)
	claims["role"] = role
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(time.Minute * 60).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

// VerifyToken parses the token, checks the signature and expiry, and
// requires the embedded role to equal expectedRole. Returns the subject id.
func VerifyToken(tokenString string, expectedRole string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}

	role, _ := claims["role"].(string)
	if role != expectedRole {
		return 0, ErrRoleMismatch
	}

	sub, _ := claims["sub"].(string)
	subjectId, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || subjectId == 0 {
		return 0, ErrTokenInvalid
	}

	return uint(subjectId), nil
}

func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where(&model.Customer{Email: e}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func GetMechanicByEmail(e string) (*model.Mechanic, error) {
	db := database.DB
	var mechanic model.Mechanic
	if err := db.Where(&model.Mechanic{Email: e}).First(&mechanic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mechanic, nil
}

func CheckByEmailCustomer(email string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	query := db.Model(&model.Customer{}).Where("email = ?", email)
	if id != nil {
		query = query.Where("id != ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CheckByEmailMechanic(email string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	query := db.Model(&model.Mechanic{}).Where("email = ?", email)
	if id != nil {
		query = query.Where("id != ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
