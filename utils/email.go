package utils

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"log/slog"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type ReservationEmailData struct {
	ID              uint
	Name            string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

type OrderEmailLine struct {
	Name     string
	Quantity int
	Price    string
}

type OrderEmailData struct {
	OrderNumber   string
	CustomerName  string
	Items         []OrderEmailLine
	Subtotal      string
	Tax           string
	Discount      string
	PromoCode     string
	Total         string
	PaymentMethod string
}

type Mailer interface {
	SendReservationConfirmation(to string, data ReservationEmailData)
	SendOrderConfirmation(to string, data OrderEmailData)
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends HTML mails in the background; failures are only logged.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *slog.Logger
}

func NewSMTPMailer(cfg SMTPConfig, log *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (m *SMTPMailer) SendReservationConfirmation(to string, data ReservationEmailData) {
	go func() {
		body, err := RenderEmail("reservation_confirmation.html", data)
		if err != nil {
			m.log.Error("render reservation email", "error", err)
			return
		}
		msg := m.message(to, "Reservation received for "+data.Date+" "+data.Time, body)
		m.send(msg, "reservation", data.ID)
	}()
}

func (m *SMTPMailer) SendOrderConfirmation(to string, data OrderEmailData) {
	go func() {
		body, err := RenderEmail("order_confirmation.html", data)
		if err != nil {
			m.log.Error("render order email", "error", err)
			return
		}
		msg := m.message(to, "Order confirmation #"+data.OrderNumber, body)

		if qr, err := GenerateQRCode(data.OrderNumber, 256); err == nil {
			msg.Embed("order_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qr)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<order_qr>"},
				"Content-Disposition": {"inline"},
			}))
		} else {
			m.log.Warn("order email without qr", "order", data.OrderNumber, "error", err)
		}
		m.send(msg, "order", data.OrderNumber)
	}()
}

func (m *SMTPMailer) message(to, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}

func (m *SMTPMailer) send(msg *gomail.Message, kind string, ref any) {
	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("send email", "kind", kind, "ref", ref, "error", err)
		return
	}
	m.log.Info("email sent", "kind", kind, "ref", ref)
}

func RenderEmail(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&body, name, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// NopMailer is used when SMTP is not configured.
type NopMailer struct{}

func (NopMailer) SendReservationConfirmation(string, ReservationEmailData) {}
func (NopMailer) SendOrderConfirmation(string, OrderEmailData)             {}
