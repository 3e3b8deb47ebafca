package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

// NewEmailService returns an error when SMTP is not configured; callers
// treat that as "run without email".
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed - %s", order.ID, order.RestaurantName))

	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td align="center">%d</td><td align="right">%.2f</td></tr>`,
			item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Thanks for your order!</h2>
        <p>Your order <strong>#%d</strong> from <strong>%s</strong> has been received and is now pending confirmation.</p>
        <table width="100%%" cellpadding="6" style="border-collapse: collapse;">
            <tr style="border-bottom: 1px solid #ddd;"><th align="left">Item</th><th>Qty</th><th align="right">Amount</th></tr>
            %s
        </table>
        <p style="margin-top: 20px;">
            Subtotal: %.2f<br>
            Delivery fee: %.2f<br>
            Tax: %.2f<br>
            <strong>Total: %.2f</strong>
        </p>
        <p>Delivering to: %s, %s, %s %s</p>
        <p style="color: #666; font-size: 12px; margin-top: 30px;">You can track your order status from the My Orders page.</p>
    </div>
</body>
</html>`,
		order.ID, order.RestaurantName, rows.String(),
		order.Subtotal, order.DeliveryFee, order.TaxAmount, order.TotalAmount,
		order.DeliveryAddress.Street, order.DeliveryAddress.City,
		order.DeliveryAddress.State, order.DeliveryAddress.ZipCode)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
