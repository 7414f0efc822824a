package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"contract_monthly_claim/internal/usecase/interfaces"
	mock_interfaces "contract_monthly_claim/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentVault_Store(t *testing.T) {
	t.Run("encrypts and writes under a fresh name keeping the extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cipher := mock_interfaces.NewMockICipher(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(cipher, store)
		v.newID = func() string { return "0b7f6a4e-1111-2222-3333-444455556666" }

		cipher.EXPECT().Encrypt([]byte("raw")).Return([]byte("sealed"), nil)
		store.EXPECT().Put(gomock.Any(), "0b7f6a4e-1111-2222-3333-444455556666.pdf", []byte("sealed")).Return(nil)

		ref, err := v.Store(context.Background(), "My Timesheet.PDF", []byte("raw"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if ref != "0b7f6a4e-1111-2222-3333-444455556666.pdf" {
			t.Fatalf("unexpected ref: %s", ref)
		}
	})

	t.Run("reference does not leak the original name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cipher := mock_interfaces.NewMockICipher(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(cipher, store)

		cipher.EXPECT().Encrypt(gomock.Any()).Return([]byte("sealed"), nil).Times(2)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		a, _ := v.Store(context.Background(), "ada-september.docx", []byte("raw"))
		b, _ := v.Store(context.Background(), "ada-september.docx", []byte("raw"))
		if a == b {
			t.Fatalf("expected distinct references")
		}
		if strings.Contains(a, "september") || !strings.HasSuffix(a, ".docx") {
			t.Fatalf("unexpected ref: %s", a)
		}
	})

	t.Run("encrypt error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cipher := mock_interfaces.NewMockICipher(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(cipher, store)

		cipher.EXPECT().Encrypt(gomock.Any()).Return(nil, errors.New("rng"))

		_, err := v.Store(context.Background(), "a.pdf", []byte("raw"))
		if !errors.Is(err, ErrDocumentCrypto) {
			t.Fatalf("expected ErrDocumentCrypto, got %v", err)
		}
	})

	t.Run("store error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cipher := mock_interfaces.NewMockICipher(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(cipher, store)

		cipher.EXPECT().Encrypt(gomock.Any()).Return([]byte("sealed"), nil)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk"))

		_, err := v.Store(context.Background(), "a.pdf", []byte("raw"))
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}

func TestDocumentVault_Retrieve(t *testing.T) {
	t.Run("decrypts and derives content type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cipher := mock_interfaces.NewMockICipher(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(cipher, store)

		store.EXPECT().Get(gomock.Any(), "abc.xlsx").Return([]byte("sealed"), nil)
		cipher.EXPECT().Decrypt([]byte("sealed")).Return([]byte("raw"), nil)

		doc, err := v.Retrieve(context.Background(), "abc.xlsx")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !bytes.Equal(doc.Content, []byte("raw")) || doc.Reference != "abc.xlsx" {
			t.Fatalf("unexpected doc: %+v", doc)
		}
		if doc.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
			t.Fatalf("unexpected content type: %s", doc.ContentType)
		}
	})

	t.Run("missing blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(mock_interfaces.NewMockICipher(ctrl), store)

		store.EXPECT().Get(gomock.Any(), "gone.pdf").Return(nil, interfaces.ErrBlobNotFound)

		_, err := v.Retrieve(context.Background(), "gone.pdf")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("empty reference", func(t *testing.T) {
		v := NewDocumentVault(nil, nil)
		_, err := v.Retrieve(context.Background(), " ")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("decrypt failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cipher := mock_interfaces.NewMockICipher(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		v := NewDocumentVault(cipher, store)

		store.EXPECT().Get(gomock.Any(), "abc.pdf").Return([]byte("garbage"), nil)
		cipher.EXPECT().Decrypt(gomock.Any()).Return(nil, errors.New("auth tag"))

		doc, err := v.Retrieve(context.Background(), "abc.pdf")
		if !errors.Is(err, ErrDocumentCrypto) {
			t.Fatalf("expected ErrDocumentCrypto, got %v", err)
		}
		if doc.Content != nil {
			t.Fatalf("expected no content on failure")
		}
	})
}

func TestDocumentVault_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContentStore(ctrl)
	v := NewDocumentVault(nil, store)

	store.EXPECT().Delete(gomock.Any(), "abc.pdf").Return(nil)

	if err := v.Remove(context.Background(), "abc.pdf"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := v.Remove(context.Background(), ""); err != nil {
		t.Fatalf("empty ref should be a no-op, got %v", err)
	}
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.pdf":  "application/pdf",
		"a.PDF":  "application/pdf",
		"a.docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"a.xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"a.txt":  "application/octet-stream",
		"noext":  "application/octet-stream",
	}
	for ref, want := range cases {
		if got := ContentTypeFor(ref); got != want {
			t.Fatalf("ContentTypeFor(%q) = %q, want %q", ref, got, want)
		}
	}
}
