package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts secrets under key material fixed at construction time.
//
// Implementations are stateless after construction and safe for concurrent
// use by any number of goroutines.
type Cipher interface {
	// Encrypt pads plaintext to the block size and returns the raw
	// ciphertext. It never fails: key material is validated when the
	// Cipher is built.
	Encrypt(plaintext []byte) []byte

	// Decrypt reverses Encrypt and strips the padding. It fails if the
	// ciphertext is not a positive multiple of the block size or the
	// padding is malformed.
	Decrypt(ciphertext []byte) ([]byte, error)

	// Fingerprint returns a short, non-reversible identifier of the key
	// material, suitable for logs.
	Fingerprint() string
}
