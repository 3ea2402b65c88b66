package cookiestore

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// chromeV10Prefix marks values encrypted with the fixed Linux key that
// Chrome falls back to when no keyring is available.
var chromeV10Prefix = []byte("v10")

// chromeV10Key is PBKDF2-SHA1("peanuts", "saltysalt", 1 iteration, 16 bytes).
var chromeV10Key = pbkdf2.Key([]byte("peanuts"), []byte("saltysalt"), 1, aes.BlockSize, sha1.New)

// chromeIV is the constant CBC IV Chrome uses on Linux: 16 spaces.
var chromeIV = bytes.Repeat([]byte{' '}, aes.BlockSize)

// decryptChromeValue decrypts a "v10" encrypted_value. Newer Chrome
// versions prepend SHA-256(host_key) to the plaintext; it is stripped when
// present.
func decryptChromeValue(encrypted []byte, host string) (string, bool) {
	if !bytes.HasPrefix(encrypted, chromeV10Prefix) {
		return "", false
	}
	data := encrypted[len(chromeV10Prefix):]
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", false
	}

	block, err := aes.NewCipher(chromeV10Key)
	if err != nil {
		return "", false
	}
	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, chromeIV).CryptBlocks(plain, data)

	plain, ok := unpadPKCS7(plain)
	if !ok {
		return "", false
	}
	if len(plain) >= sha256.Size {
		sum := sha256.Sum256([]byte(host))
		if bytes.Equal(plain[:sha256.Size], sum[:]) {
			plain = plain[sha256.Size:]
		}
	}
	return string(plain), true
}

func unpadPKCS7(b []byte) ([]byte, bool) {
	if len(b) == 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, false
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, false
		}
	}
	return b[:len(b)-n], true
}
