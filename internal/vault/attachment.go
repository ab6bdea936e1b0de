package vault

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/crypto/chacha20poly1305"
)

// DatabaseAttachment - полностью материализованное (не потоковое) вложение.
//
// compressed: содержимое хранится в gzip.
// protectedInMemory: содержимое запечатано XChaCha20-Poly1305 случайным ключом,
// который живёт только в этой структуре.
type DatabaseAttachment struct {
	compressed bool
	protected  bool
	length     int
	digest     [sha256.Size]byte

	payload []byte
	key     []byte
	nonce   []byte
}

// NewDatabaseAttachment оборачивает data. Срез data не удерживается.
func NewDatabaseAttachment(data []byte, compressed, protectedInMemory bool) (*DatabaseAttachment, error) {
	a := &DatabaseAttachment{
		compressed: compressed,
		protected:  protectedInMemory,
		length:     len(data),
		digest:     sha256.Sum256(data),
	}

	payload := append([]byte(nil), data...)
	if compressed {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, fmt.Errorf("compress attachment: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("compress attachment: %w", err)
		}
		payload = buf.Bytes()
	}

	if protectedInMemory {
		key := make([]byte, chacha20poly1305.KeySize)
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return nil, err
		}
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, err
		}
		nonce := make([]byte, aead.NonceSize())
		if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
			return nil, err
		}
		payload = aead.Seal(nil, nonce, payload, nil)
		a.key, a.nonce = key, nonce
	}

	a.payload = payload
	return a, nil
}

// Data возвращает исходное содержимое вложения.
func (a *DatabaseAttachment) Data() ([]byte, error) {
	payload := a.payload
	if a.protected {
		aead, err := chacha20poly1305.NewX(a.key)
		if err != nil {
			return nil, err
		}
		payload, err = aead.Open(nil, a.nonce, payload, nil)
		if err != nil {
			return nil, fmt.Errorf("unseal attachment: %w", err)
		}
	}
	if a.compressed {
		zr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("decompress attachment: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("decompress attachment: %w", err)
		}
		return out, nil
	}
	return append([]byte(nil), payload...), nil
}

// Length - размер исходного содержимого в байтах.
func (a *DatabaseAttachment) Length() int { return a.length }

// Digest - SHA-256 исходного содержимого в hex.
func (a *DatabaseAttachment) Digest() string { return hex.EncodeToString(a.digest[:]) }

func (a *DatabaseAttachment) Compressed() bool { return a.compressed }
func (a *DatabaseAttachment) ProtectedInMemory() bool { return a.protected }
