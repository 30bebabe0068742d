package repository

// Tx is the staged state of one logical operation. Operations mutate the
// embedded Snapshot freely and Touch every collection they changed; only
// touched collections are persisted on commit.
type Tx struct {
	*Snapshot
	touched map[Collection]struct{}
}

func newTx(s *Snapshot) *Tx {
	return &Tx{Snapshot: s, touched: map[Collection]struct{}{}}
}

func (tx *Tx) Touch(cs ...Collection) {
	for _, c := range cs {
		tx.touched[c] = struct{}{}
	}
}

// Touched lists touched collections in persistence order.
func (tx *Tx) Touched() []Collection {
	out := make([]Collection, 0, len(tx.touched))
	for _, c := range AllCollections {
		if _, ok := tx.touched[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// NextID allocates max+1 over the staged state of c, so ids allocated
// earlier in the same operation are accounted for.
func (tx *Tx) NextID(c Collection) uint {
	return tx.nextID(c)
}
