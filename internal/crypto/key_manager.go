package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/logger"
)

// KeyManager handles the RSA keys used to sign requests to the election backend.
type KeyManager interface {
	GenerateKey() (*rsa.PrivateKey, error)
	EncodePrivateKey(*rsa.PrivateKey) []byte
	LoadPrivateKey(path string) (*rsa.PrivateKey, error)
	FormatPubKey(crypto.PublicKey) string
}

type rsaKeyManager struct {
	log   logger.Logger
	cache *lru.Cache[string, *rsa.PrivateKey]
}

func NewKeyManager(log logger.Logger) *rsaKeyManager {
	cache, _ := lru.New[string, *rsa.PrivateKey](16)
	return &rsaKeyManager{
		log:   log,
		cache: cache,
	}
}

func (k *rsaKeyManager) LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	if key, cacheHit := k.cache.Get(path); cacheHit {
		return key, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read private key file")
	}
	pemBlock, _ := pem.Decode(content)
	if pemBlock == nil {
		return nil, errors.New("unable to decode key PEM")
	}

	var key *rsa.PrivateKey
	switch pemBlock.Type {
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(pemBlock.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "unable to parse private key")
		}
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(pemBlock.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "unable to parse private key")
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("private key is not an RSA key")
		}
		key = rsaKey
	default:
		return nil, errors.Errorf("unsupported PEM block %q", pemBlock.Type)
	}

	k.log.WithField("path", path).Debug("loaded signing key")
	k.cache.Add(path, key)
	return key, nil
}

func (k *rsaKeyManager) GenerateKey() (*rsa.PrivateKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	return privateKey, errors.Wrap(err, "rsa key generation failed")
}

func (k *rsaKeyManager) EncodePrivateKey(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

func (k *rsaKeyManager) FormatPubKey(key crypto.PublicKey) string {
	keyBytes, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return ""
	}
	pemData := string(
		pem.EncodeToMemory(
			&pem.Block{
				Type:  "PUBLIC KEY",
				Bytes: keyBytes,
			},
		),
	)

	return pemData
}
