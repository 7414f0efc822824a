package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const contentTypeOctetStream = "application/octet-stream"

var documentContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// IDocumentVault encrypts attachments on the way in and decrypts them on the
// way out. Only ciphertext ever reaches the content store.
type IDocumentVault interface {
	Store(ctx context.Context, originalFilename string, raw []byte) (string, error)
	Retrieve(ctx context.Context, ref string) (entities.Document, error)
	Remove(ctx context.Context, ref string) error
}

type DocumentVault struct {
	cipher interfaces.ICipher
	store  interfaces.IContentStore
	newID  func() string
}

var _ IDocumentVault = (*DocumentVault)(nil)

func NewDocumentVault(cipher interfaces.ICipher, store interfaces.IContentStore) *DocumentVault {
	return &DocumentVault{cipher: cipher, store: store, newID: uuid.NewString}
}

// Store does no validation of its own; callers run ValidateSubmission first.
// The returned reference keeps only the lower-cased extension of the
// original name.
func (v *DocumentVault) Store(ctx context.Context, originalFilename string, raw []byte) (string, error) {
	ref := v.newID() + strings.ToLower(filepath.Ext(originalFilename))

	sealed, err := v.cipher.Encrypt(raw)
	if err != nil {
		log.Printf("[vault][usecase] encrypt failed ref=%s err=%v", ref, err)
		return "", fmt.Errorf("%w: %v", ErrDocumentCrypto, err)
	}
	if err := v.store.Put(ctx, ref, sealed); err != nil {
		log.Printf("[vault][usecase] put failed ref=%s err=%v", ref, err)
		return "", err
	}

	log.Printf("[vault][usecase] stored ref=%s size=%d", ref, len(raw))
	return ref, nil
}

func (v *DocumentVault) Retrieve(ctx context.Context, ref string) (entities.Document, error) {
	if strings.TrimSpace(ref) == "" {
		return entities.Document{}, ErrDocumentNotFound
	}

	sealed, err := v.store.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, interfaces.ErrBlobNotFound) {
			return entities.Document{}, ErrDocumentNotFound
		}
		return entities.Document{}, err
	}

	raw, err := v.cipher.Decrypt(sealed)
	if err != nil {
		log.Printf("[vault][usecase] decrypt failed ref=%s err=%v", ref, err)
		return entities.Document{}, fmt.Errorf("%w: %v", ErrDocumentCrypto, err)
	}

	return entities.Document{
		Reference:   ref,
		ContentType: ContentTypeFor(ref),
		Content:     raw,
	}, nil
}

func (v *DocumentVault) Remove(ctx context.Context, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return nil
	}
	if err := v.store.Delete(ctx, ref); err != nil {
		return err
	}
	log.Printf("[vault][usecase] removed ref=%s", ref)
	return nil
}

// ContentTypeFor maps a reference's extension to its MIME type.
func ContentTypeFor(ref string) string {
	if ct, ok := documentContentTypes[strings.ToLower(filepath.Ext(ref))]; ok {
		return ct
	}
	return contentTypeOctetStream
}
