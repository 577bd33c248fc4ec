package orchard

import (
	"context"
	"errors"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Commitment tree errors.
var (
	ErrTreeFull        = errors.New("orchard: commitment tree is full")
	ErrInvalidPosition = errors.New("orchard: invalid leaf position")
)

// TreeStore persists commitment-tree nodes. Node identity is
// (level, index); level 0 holds leaves.
type TreeStore interface {
	GetNode(ctx context.Context, level, index uint64) (fr.Element, bool, error)
	SetNode(ctx context.Context, level, index uint64, node fr.Element) error
	GetSize(ctx context.Context) (uint64, error)
	SetSize(ctx context.Context, size uint64) error
}

// CommitmentTree is a fixed-depth-TreeDepth Merkle tree over note
// commitments. Nodes are combined with the same Poseidon stand-in
// (mimcHash) the in-circuit Merkle sub-chip (merkleChip.Root) folds
// siblings with, not the teacher's SHA-256: witness assembly and
// synthesis must recompute the identical root from the identical path,
// so both sides of the Merkle check have to share one hash.
type CommitmentTree struct {
	mu    sync.RWMutex
	size  uint64
	store TreeStore

	emptyHashes [TreeDepth + 1]fr.Element
}

// NewCommitmentTree builds a tree backed by store, precomputing the
// empty subtree hash at every level.
func NewCommitmentTree(store TreeStore) *CommitmentTree {
	ct := &CommitmentTree{store: store}
	ct.emptyHashes[0] = fr.Element{}
	for level := 1; level <= TreeDepth; level++ {
		ct.emptyHashes[level] = hashPair(ct.emptyHashes[level-1], ct.emptyHashes[level-1])
	}
	return ct
}

// hashPair combines two node values the same way merkleChip.Root does:
// reset, write left then right, sum.
func hashPair(left, right fr.Element) fr.Element {
	return mimcHash(left, right)
}

// AddCommitment appends a leaf, returning its position.
func (ct *CommitmentTree) AddCommitment(ctx context.Context, commitment fr.Element) (uint64, error) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	maxLeaves := uint64(1) << TreeDepth
	if ct.size >= maxLeaves {
		return 0, ErrTreeFull
	}

	position := ct.size
	ct.size++

	if err := ct.store.SetNode(ctx, 0, position, commitment); err != nil {
		ct.size--
		return 0, err
	}

	cur := commitment
	idx := position
	for level := 0; level < TreeDepth; level++ {
		sibIdx := idx ^ 1
		sib, ok, err := ct.store.GetNode(ctx, uint64(level), sibIdx)
		if err != nil {
			return 0, err
		}
		if !ok {
			sib = ct.emptyHashes[level]
		}

		var parent fr.Element
		if idx%2 == 0 {
			parent = hashPair(cur, sib)
		} else {
			parent = hashPair(sib, cur)
		}

		idx /= 2
		cur = parent
		if err := ct.store.SetNode(ctx, uint64(level+1), idx, cur); err != nil {
			return 0, err
		}
	}

	return position, ct.store.SetSize(ctx, ct.size)
}

// MerklePath is the witness shape the circuit's Siblings/Position
// fields expect: TreeDepth sibling hashes and the leaf's position,
// least-significant bit first.
type MerklePath struct {
	Siblings [TreeDepth]fr.Element
	Position [TreeDepth]bool
}

// PathTo computes the Merkle path for the leaf at position.
func (ct *CommitmentTree) PathTo(ctx context.Context, position uint64) (MerklePath, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	if position >= ct.size {
		return MerklePath{}, ErrInvalidPosition
	}

	var path MerklePath
	idx := position
	for level := 0; level < TreeDepth; level++ {
		sibIdx := idx ^ 1
		sib, ok, err := ct.store.GetNode(ctx, uint64(level), sibIdx)
		if err != nil {
			return MerklePath{}, err
		}
		if !ok {
			sib = ct.emptyHashes[level]
		}
		path.Siblings[level] = sib
		path.Position[level] = idx%2 == 1
		idx /= 2
	}
	return path, nil
}

// Root recomputes the root a leaf-plus-path implies, off-circuit; this
// mirrors MerkleChip.Root exactly and is what native witness assembly
// uses to compute the ANCHOR a valid spend must match.
func Root(leaf fr.Element, path MerklePath) fr.Element {
	cur := leaf
	for level := 0; level < TreeDepth; level++ {
		sib := path.Siblings[level]
		if path.Position[level] {
			cur = hashPair(sib, cur)
		} else {
			cur = hashPair(cur, sib)
		}
	}
	return cur
}

// InMemoryTreeStore is an in-memory TreeStore, suitable for tests and
// for single-process use.
type InMemoryTreeStore struct {
	mu    sync.RWMutex
	nodes map[uint64]map[uint64]fr.Element
	size  uint64
}

// NewInMemoryTreeStore constructs an empty store.
func NewInMemoryTreeStore() *InMemoryTreeStore {
	return &InMemoryTreeStore{nodes: make(map[uint64]map[uint64]fr.Element)}
}

func (s *InMemoryTreeStore) GetNode(ctx context.Context, level, index uint64) (fr.Element, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	levelMap, ok := s.nodes[level]
	if !ok {
		return fr.Element{}, false, nil
	}
	node, ok := levelMap[index]
	return node, ok, nil
}

func (s *InMemoryTreeStore) SetNode(ctx context.Context, level, index uint64, node fr.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nodes[level] == nil {
		s.nodes[level] = make(map[uint64]fr.Element)
	}
	s.nodes[level][index] = node
	return nil
}

func (s *InMemoryTreeStore) GetSize(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size, nil
}

func (s *InMemoryTreeStore) SetSize(ctx context.Context, size uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = size
	return nil
}
