// Package qr renders sold tickets as encrypted QR images so a ticket
// can be checked at the door without exposing its contents.
package qr

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/skip2/go-qrcode"

	"cinema-manager/internal/models"
)

type Generator struct {
	secret []byte
}

func NewGenerator(secret string) *Generator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &Generator{secret: hashed[:]}
}

// payload is what ends up inside the QR image. The session is
// flattened to its id and showing time so the payload stays small.
type payload struct {
	TicketID    string    `json:"ticket_id"`
	SessionID   string    `json:"session_id"`
	SeatNumber  int       `json:"seat_number"`
	ShowingTime time.Time `json:"showing_time"`
	IssuedAt    time.Time `json:"issued_at"`
}

// EncryptedPNG returns a PNG-encoded QR image of the AES-encrypted
// ticket payload.
func (g *Generator) EncryptedPNG(ticket *models.Ticket) ([]byte, error) {
	data, err := json.Marshal(payload{
		TicketID:    ticket.ID,
		SessionID:   ticket.Session.ID,
		SeatNumber:  ticket.SeatNumber,
		ShowingTime: ticket.Session.ShowingTime,
		IssuedAt:    ticket.IssuedAt,
	})
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

// WritePNG renders the ticket and drops the image under dir, named by
// ticket id.
func (g *Generator) WritePNG(dir string, ticket *models.Ticket) (string, error) {
	png, err := g.EncryptedPNG(ticket)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create qr directory: %w", err)
	}
	path := filepath.Join(dir, ticket.ID+".png")
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("write qr image: %w", err)
	}
	return path, nil
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
