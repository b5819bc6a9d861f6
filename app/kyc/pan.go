package kyc

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"

	"github.com/pkg/errors"
)

var panClient = &http.Client{Timeout: 15 * time.Second}

// encryptPayload AES-CBC encrypts plaintext with a key derived from the
// shared secret; the random IV is prepended to the ciphertext.
func encryptPayload(secret string, plaintext []byte) (string, error) {
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", err
	}

	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(plaintext, bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	ciphertext := make([]byte, aes.BlockSize+len(padded))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext[aes.BlockSize:], padded)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func decryptPayload(secret string, encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode encrypted payload")
	}
	if len(raw) < aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return nil, errors.New("encrypted payload has invalid length")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	iv, ciphertext := raw[:aes.BlockSize], raw[aes.BlockSize:]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	padLen := int(plaintext[len(plaintext)-1])
	if padLen == 0 || padLen > aes.BlockSize || padLen > len(plaintext) {
		return nil, errors.New("encrypted payload has invalid padding")
	}
	return plaintext[:len(plaintext)-padLen], nil
}

// verifyPAN runs the encrypted round trip with the verification gateway.
func verifyPAN(conf *config.Config, pan string) (*model.PANVerification, error) {
	payload, err := json.Marshal(map[string]string{"pan": pan})
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptPayload(conf.PANSecretKey, payload)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encrypt PAN payload")
	}

	reqBody, err := json.Marshal(map[string]string{"data": encrypted})
	if err != nil {
		return nil, err
	}

	resp, err := panClient.Post(conf.PANGatewayURL, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(err, "PAN gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.Errorf("PAN gateway responded with %d", resp.StatusCode)
	}

	var respBody struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, errors.Wrap(err, "unable to decode PAN gateway response")
	}

	decrypted, err := decryptPayload(conf.PANSecretKey, respBody.Data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decrypt PAN gateway response")
	}

	var result model.PANVerification
	if err := json.Unmarshal(decrypted, &result); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal PAN verification")
	}
	return &result, nil
}
