package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"sync"
	"time"
)

// ErrEmptyHistory is returned by a History that holds no genesis block.
var ErrEmptyHistory = errors.New("empty history")

// zeroSumTolerance absorbs the rounding of pots split in uneven shares.
const zeroSumTolerance = 1e-6

// History is an append-only chain of judged hands. Use NewHistory; the zero
// value has no genesis block and rejects every operation.
type History struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewHistory creates a new history with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty hand.
func NewHistory() *History {
	h := &History{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
	}
	genesis.Hash = calculateHash(genesis)
	h.blocks = append(h.blocks, genesis)

	return h
}

// Append adds a judged hand to the history. The record is rejected when its
// per-player slices disagree in length, when a winner index is out of range
// or when the payoffs do not sum to zero.
func (h *History) Append(r HandRecord) error {
	if err := validateRecord(r); err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.blocks) == 0 {
		return ErrEmptyHistory
	}
	latest := h.blocks[len(h.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Hand:      r,
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	h.blocks = append(h.blocks, newBlock)

	return nil
}

// Len returns the number of recorded hands, genesis excluded.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.blocks) == 0 {
		return 0
	}
	return len(h.blocks) - 1
}

// GetLatest returns the most recently added block in the history.
// Returns an error if the history is empty.
func (h *History) GetLatest() (Block, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.blocks) == 0 {
		return Block{}, ErrEmptyHistory
	}

	return h.blocks[len(h.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (h *History) GetByIndex(index int) (Block, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if index < 0 || index >= len(h.blocks) {
		return Block{}, fmt.Errorf("index out of range")
	}

	return h.blocks[index], nil
}

// Verify validates the integrity of the entire history by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (h *History) Verify() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.blocks) == 0 {
		return ErrEmptyHistory
	}

	if h.blocks[0].PrevHash != "0" || h.blocks[0].Hash != calculateHash(h.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(h.blocks); i++ {
		if err := validateBlock(h.blocks[i], h.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// WriteJSONLines writes one JSON object per recorded hand, oldest first.
func (h *History) WriteJSONLines(w io.Writer) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.blocks) == 0 {
		return ErrEmptyHistory
	}

	enc := json.NewEncoder(w)
	for _, b := range h.blocks[1:] {
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("write block %d: %w", b.Index, err)
		}
	}
	return nil
}

func validateRecord(r HandRecord) error {
	n := len(r.Hands)
	if n == 0 {
		return fmt.Errorf("no players")
	}
	if len(r.InChips) != n || len(r.Folded) != n || len(r.Payoffs) != n {
		return fmt.Errorf("expected %d entries per player, got %d chips, %d folded, %d payoffs",
			n, len(r.InChips), len(r.Folded), len(r.Payoffs))
	}
	if len(r.Players) != 0 && len(r.Players) != n {
		return fmt.Errorf("expected %d player names, got %d", n, len(r.Players))
	}
	if len(r.Winners) == 0 {
		return fmt.Errorf("no winners")
	}
	for _, w := range r.Winners {
		if w < 0 || w >= n {
			return fmt.Errorf("winner %d out of range", w)
		}
	}
	if !slices.IsSorted(r.Winners) {
		return fmt.Errorf("winners %v not sorted", r.Winners)
	}
	total := 0.0
	for _, p := range r.Payoffs {
		total += p
	}
	if math.Abs(total) > zeroSumTolerance {
		return fmt.Errorf("payoffs %v sum to %v", r.Payoffs, total)
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage and current hash validity.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index, timestamp,
// previous hash and JSON marshaled hand.
func calculateHash(block Block) string {
	handBytes, _ := json.Marshal(block.Hand)

	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(handBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
