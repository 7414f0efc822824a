package interfaces

// ICipher encrypts and decrypts document payloads with a key fixed for the
// lifetime of the process.
type ICipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}
