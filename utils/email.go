package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"repair_shop/config"

	"github.com/jordan-wright/email"
)

// SendPasswordResetEmail mails the reset link. Sent async so the request
// does not wait on SMTP.
func SendPasswordResetEmail(to string, token string) {
	go func() {
		host := config.Config("SMTP_HOST")
		port := config.Config("SMTP_PORT")
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		if host == "" {
			log.Println("SMTP_HOST not configured, skipping password reset email")
			return
		}

		resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.Config("APP_BASE_URL"), token)

		e := email.NewEmail()
		e.From = from
		e.To = []string{to}
		e.Subject = "Password reset"
		e.Text = []byte(fmt.Sprintf("Follow this link to reset your password: %s\nThe link expires in one hour.", resetLink))

		addr := fmt.Sprintf("%s:%s", host, port)
		if err := e.Send(addr, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("failed to send password reset email: %v", err)
		}
	}()
}
