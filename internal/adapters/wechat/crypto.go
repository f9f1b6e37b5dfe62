package wechat

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
)

// DecryptUserInfo decrypts the mini-program profile payload. All three inputs
// arrive base64-encoded; the cipher is AES-128-CBC with PKCS#7 padding and the
// session key as the symmetric key.
func (c *Client) DecryptUserInfo(sessionKey, encryptedData, iv string) (*domain.WxUserInfo, error) {
	key, err := base64.StdEncoding.DecodeString(sessionKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBase64DecodeError, fmt.Errorf("session key: %w", err))
	}
	data, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBase64DecodeError, fmt.Errorf("encrypted data: %w", err))
	}
	ivBytes, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBase64DecodeError, fmt.Errorf("iv: %w", err))
	}

	plaintext, err := decryptCBC(key, ivBytes, data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCustom, err)
	}

	var info domain.WxUserInfo
	if err := json.Unmarshal(plaintext, &info); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCustom, fmt.Errorf("failed to decode decrypted profile: %w", err))
	}
	return &info, nil
}

func decryptCBC(key, iv, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("iv length %d does not match block size", len(iv))
	}
	if len(data) == 0 || len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(data))
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return pkcs7Unpad(out, block.BlockSize())
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize || pad > len(data) {
		return nil, fmt.Errorf("invalid pkcs7 padding")
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, fmt.Errorf("invalid pkcs7 padding")
		}
	}
	return data[:len(data)-pad], nil
}
