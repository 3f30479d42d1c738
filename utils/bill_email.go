package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// BillLine is one invoice line rendered into the bill email body.
type BillLine struct {
	Description string
	Amount      string
}

// BillEmailData carries everything the templated bill needs: hotel branding
// plus the computed invoice values. Amounts arrive pre-formatted.
type BillEmailData struct {
	HotelName    string
	HotelAddress string
	HotelPhone   string
	HotelEmail   string

	GuestName     string
	InvoiceNumber string
	IssueDate     string
	Lines         []BillLine
	Subtotal      string
	TaxAmount     string
	GrandTotal    string
}

func smtpConfig() (host, port, user, pass, fromName string, ok bool) {
	host = os.Getenv("SMTP_HOST")
	port = os.Getenv("SMTP_PORT")
	user = os.Getenv("SMTP_USERNAME")
	pass = os.Getenv("SMTP_PASSWORD")
	fromName = os.Getenv("SMTP_FROM_NAME")
	ok = host != "" && port != "" && user != "" && pass != ""
	return
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func sendPlainEmail(recipient, subject, body string) error {
	host, port, user, pass, fromName, ok := smtpConfig()
	if !ok {
		log.Printf("[MOCK EMAIL] to:%s subject:%q\n%s", recipient, subject, body)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, user)
	auth := smtp.PlainAuth("", user, pass, host)
	addr := fmt.Sprintf("%s:%s", host, port)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, user, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipient, err)
		return err
	}

	log.Printf("Email sent to %s", recipient)
	return nil
}

// SendBillEmail sends the itemised bill for a completed stay. Without SMTP
// configuration the rendered mail is logged instead of delivered.
func SendBillEmail(recipient string, data BillEmailData) error {
	subject := fmt.Sprintf("Your bill from %s — %s", data.HotelName, data.InvoiceNumber)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dear %s,\n\n", data.GuestName))
	sb.WriteString(fmt.Sprintf("Thank you for staying with %s. Your bill %s (issued %s):\n\n",
		data.HotelName, data.InvoiceNumber, data.IssueDate))
	for _, line := range data.Lines {
		sb.WriteString(fmt.Sprintf("  %-40s %s\n", line.Description, line.Amount))
	}
	sb.WriteString(fmt.Sprintf("\n  %-40s %s\n", "Subtotal", data.Subtotal))
	sb.WriteString(fmt.Sprintf("  %-40s %s\n", "Tax", data.TaxAmount))
	sb.WriteString(fmt.Sprintf("  %-40s %s\n", "Total", data.GrandTotal))
	sb.WriteString(fmt.Sprintf("\nWe hope to welcome you back soon.\n\n%s\n%s\n%s\n",
		data.HotelName, data.HotelAddress, data.HotelPhone))

	return sendPlainEmail(recipient, subject, sb.String())
}

// SendInvoiceReminderEmail sends a payment reminder for an outstanding
// invoice.
func SendInvoiceReminderEmail(recipient, hotelName, guestName, invoiceNumber, dueDate, total string) error {
	subject := fmt.Sprintf("Payment reminder — invoice %s", invoiceNumber)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a friendly reminder that invoice %s for %s is still outstanding"+
			" (due %s).\n\n"+
			"If you have already arranged payment, please disregard this message.\n\n"+
			"Kind regards,\n%s\n",
		guestName, invoiceNumber, total, dueDate, hotelName,
	)

	return sendPlainEmail(recipient, subject, body)
}
