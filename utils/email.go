package utils

import (
	"bytes"
	"io"

	"gopkg.in/gomail.v2"
)

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// BuildTicketsEmail tạo email đính kèm file PDF vé
func BuildTicketsEmail(from, to, orderCode, fileName string, pdf []byte) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Vé xem phim - đơn hàng #"+orderCode)
	m.SetBody("text/html", "<p>Cảm ơn quý khách đã đặt vé. Vé của quý khách được đính kèm trong email này.</p>")
	m.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdf))
		return err
	}))
	return m
}

func SendTicketsEmail(s SMTPSettings, to, orderCode, fileName string, pdf []byte) error {
	m := BuildTicketsEmail(s.From, to, orderCode, fileName, pdf)
	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return d.DialAndSend(m)
}
