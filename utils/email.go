package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type ReceiptLine struct {
	Name     string
	Quantity int
	Price    float64
}

type ReceiptData struct {
	OrderCode      string
	Lines          []ReceiptLine
	TotalAmount    float64
	DiscountAmount float64
	PaidAt         string
}

// SendReceiptEmail mails a plain-text receipt after payment. Best effort and
// async so it never delays the payment response.
func SendReceiptEmail(to string, data ReceiptData) {
	go func() {
		var body strings.Builder
		fmt.Fprintf(&body, "Receipt for order %s\n\n", data.OrderCode)
		for _, line := range data.Lines {
			fmt.Fprintf(&body, "%d x %s: %.2f\n", line.Quantity, line.Name, line.Price)
		}
		if data.DiscountAmount > 0 {
			fmt.Fprintf(&body, "\nDiscount: -%.2f\n", data.DiscountAmount)
		}
		fmt.Fprintf(&body, "Total: %.2f\nPaid at: %s\n", data.TotalAmount, data.PaidAt)

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		if host == "" {
			log.Printf("SMTP not configured, skipping receipt email for %s", data.OrderCode)
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Receipt for order "+data.OrderCode)
		m.SetBody("text/plain", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send receipt email: %v", err)
		}
	}()
}
