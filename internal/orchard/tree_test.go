package orchard

import (
	"context"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestCommitmentTreePathMatchesRecomputedRoot(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()

	store := NewInMemoryTreeStore()
	ct := NewCommitmentTree(store)

	leaves := []fr.Element{feFromInt64(11), feFromInt64(22), feFromInt64(33)}
	for _, leaf := range leaves {
		_, err := ct.AddCommitment(ctx, leaf)
		assert.NoError(err)
	}

	for pos, leaf := range leaves {
		path, err := ct.PathTo(ctx, uint64(pos))
		assert.NoError(err)

		root := Root(leaf, path)

		// The root recomputed from any leaf's own path must agree with
		// every other leaf's recomputed root: they all describe the
		// same tree.
		for otherPos, otherLeaf := range leaves {
			otherPath, err := ct.PathTo(ctx, uint64(otherPos))
			assert.NoError(err)
			otherRoot := Root(otherLeaf, otherPath)
			assert.True(root.Equal(&otherRoot), "leaf %d and %d disagree on root", pos, otherPos)
		}
	}
}

func TestCommitmentTreeRejectsOutOfRangePosition(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryTreeStore()
	ct := NewCommitmentTree(store)

	_, err := ct.AddCommitment(ctx, feFromInt64(1))
	require.NoError(t, err)

	_, err = ct.PathTo(ctx, 5)
	require.ErrorIs(t, err, ErrInvalidPosition)
}

func TestCommitmentTreeDifferentLeavesProduceDifferentRoots(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()

	storeA := NewInMemoryTreeStore()
	ctA := NewCommitmentTree(storeA)
	_, err := ctA.AddCommitment(ctx, feFromInt64(1))
	assert.NoError(err)
	pathA, err := ctA.PathTo(ctx, 0)
	assert.NoError(err)

	storeB := NewInMemoryTreeStore()
	ctB := NewCommitmentTree(storeB)
	_, err = ctB.AddCommitment(ctx, feFromInt64(2))
	assert.NoError(err)
	pathB, err := ctB.PathTo(ctx, 0)
	assert.NoError(err)

	rootA := Root(feFromInt64(1), pathA)
	rootB := Root(feFromInt64(2), pathB)
	assert.False(rootA.Equal(&rootB))
}
