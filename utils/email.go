package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type OrderConfirmationData struct {
	OrderCode  string
	MovieTitle string
	ShowTime   string
	Seats      string
	HallName   string
}

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<h2>Booking confirmed</h2>
<p>Order <b>{{.OrderCode}}</b></p>
<p>{{.MovieTitle}} — {{.ShowTime}}</p>
<p>Hall: {{.HallName}}</p>
<p>Seats: {{.Seats}}</p>
`))

// SendOrderConfirmationEmail sends asynchronously so the booking response is
// not delayed. Missing SMTP config just skips the mail.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		if host == "" || to == "" {
			return
		}

		var body bytes.Buffer
		if err := orderConfirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("render confirmation email: %v", err)
			return
		}

		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmation #"+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("send confirmation email for %s: %v", data.OrderCode, err)
		}
	}()
}
