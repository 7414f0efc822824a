package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const claimsBucket = "claims"

var errStopUpdate = errors.New("stop update")

// ClaimBoltRepository keeps claims in an embedded BoltDB file. Keys are the
// big-endian claim id, so cursor order is id order. Bolt serialises writers,
// which makes the version check and the write atomic.
type ClaimBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IClaimRepository = (*ClaimBoltRepository)(nil)

// NewClaimBoltRepository opens (or creates) the database file and the claims
// bucket.
func NewClaimBoltRepository(path string) (*ClaimBoltRepository, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(claimsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &ClaimBoltRepository{db: db}, nil
}

func (r *ClaimBoltRepository) Close() error {
	return r.db.Close()
}

func (r *ClaimBoltRepository) Create(_ context.Context, c entities.Claim) (entities.Claim, error) {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(claimsBucket))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		c.ID = int64(seq)
		return putClaim(b, c)
	})
	if err != nil {
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimBoltRepository) GetByID(_ context.Context, id int64) (entities.Claim, error) {
	var c entities.Claim
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(claimsBucket)).Get(idKey(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &c)
	})
	if err != nil {
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimBoltRepository) List(_ context.Context) ([]entities.Claim, error) {
	return r.collect(false, func(entities.Claim) bool { return true })
}

func (r *ClaimBoltRepository) ListByStatus(_ context.Context, status entities.ClaimStatus) ([]entities.Claim, error) {
	return r.collect(false, func(c entities.Claim) bool { return c.Status == status })
}

func (r *ClaimBoltRepository) ListBySubmitter(_ context.Context, username string) ([]entities.Claim, error) {
	return r.collect(true, func(c entities.Claim) bool { return c.SubmittedBy == username })
}

func (r *ClaimBoltRepository) Update(_ context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error) {
	var (
		result   entities.Claim
		conflict bool
	)
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(claimsBucket))
		v := b.Get(idKey(c.ID))
		if v == nil {
			return errStopUpdate
		}

		var stored entities.Claim
		if err := json.Unmarshal(v, &stored); err != nil {
			return err
		}
		if stored.Version != expectedVersion {
			conflict = true
			return errStopUpdate
		}

		result = c
		return putClaim(b, c)
	})
	if conflict {
		return entities.Claim{}, interfaces.ErrVersionConflict
	}
	if errors.Is(err, errStopUpdate) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	return result, nil
}

// Delete returns the removed claim, or a zero Claim when the id was absent.
func (r *ClaimBoltRepository) Delete(_ context.Context, id int64) (entities.Claim, error) {
	var deleted entities.Claim
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(claimsBucket))
		v := b.Get(idKey(id))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &deleted); err != nil {
			return err
		}
		return b.Delete(idKey(id))
	})
	if err != nil {
		return entities.Claim{}, err
	}
	return deleted, nil
}

func (r *ClaimBoltRepository) collect(descending bool, keep func(entities.Claim) bool) ([]entities.Claim, error) {
	claims := []entities.Claim{}
	err := r.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(claimsBucket)).Cursor()
		first, next := cur.First, cur.Next
		if descending {
			first, next = cur.Last, cur.Prev
		}
		for k, v := first(); k != nil; k, v = next() {
			var c entities.Claim
			if err := json.Unmarshal(v, &c); err != nil {
				return err
			}
			if keep(c) {
				claims = append(claims, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func putClaim(b *bolt.Bucket, c entities.Claim) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return b.Put(idKey(c.ID), data)
}

func idKey(id int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}
