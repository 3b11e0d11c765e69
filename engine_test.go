package bstree

import (
	"cmp"
	"encoding/hex"
	"iter"
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRecursive[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{eng: recursiveEngine[K, V]{}}
}

func newIterative[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{eng: iterativeEngine[K, V]{}}
}

// forEachEngine runs fn once per engine so every behavior test covers both.
func forEachEngine(t *testing.T, fn func(t *testing.T, newTree func() *Tree[int, string])) {
	t.Run("recursive", func(t *testing.T) {
		fn(t, newRecursive[int, string])
	})
	t.Run("iterative", func(t *testing.T) {
		fn(t, newIterative[int, string])
	})
}

func collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) (keys []K, vals []V) {
	for k, v := range seq {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

func randomStr() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

func TestEngineName(t *testing.T) {
	assert := assert.New(t)
	assert.Contains([]string{"recursive", "iterative"}, EngineName())
}

func TestRandomEngineOps(t *testing.T) {
	// tiny key range, high collision and overwrite rate
	randomEngineOps(t, 30, 20, 10)
	// larger tree, light churn
	randomEngineOps(t, 5000, 50, 5)
	// delete-heavy, tree shrinks toward empty
	randomEngineOps(t, 200, 150, 8)
}

// randomEngineOps drives a recursive-engine tree, an iterative-engine tree,
// and a plain map model through the same random operations, checking after
// every round that all three agree.
func randomEngineOps(t *testing.T, size, opCount, iterations int) {
	assert := assert.New(t)

	rec := newRecursive[int, string]()
	it := newIterative[int, string]()
	model := make(map[int]string, size)
	keyRange := size * 2

	for range size {
		k := rand.Intn(keyRange)
		v := randomStr()
		rec.Insert(k, v)
		it.Insert(k, v)
		model[k] = v
	}

	for range iterations {
		for range opCount {
			// insertions, some of them overwrites
			k := rand.Intn(keyRange)
			v := randomStr()
			rec.Insert(k, v)
			it.Insert(k, v)
			model[k] = v
		}
		for range opCount {
			// deletions, some keys absent
			k := rand.Intn(keyRange)
			rec.Delete(k)
			it.Delete(k)
			delete(model, k)
		}
		for range 2 {
			// subtree excisions: engines must agree on membership exactly
			k := rand.Intn(keyRange)
			a := rec.TakeSubtree(k)
			b := it.TakeSubtree(k)
			aKeys, _ := collect(a.InOrder())
			bKeys, _ := collect(b.InOrder())
			assert.Equal(aKeys, bKeys)
			assert.Equal(a.Len(), b.Len())
			for _, kk := range aKeys {
				delete(model, kk)
			}
		}
		verifyEnginesMatch(t, rec, it, model, keyRange)
	}
}

// verifyEnginesMatch checks both trees against the model for contents and
// against each other for shape-dependent outputs.
func verifyEnginesMatch(t *testing.T, rec, it *Tree[int, string], model map[int]string, keyRange int) {
	assert := assert.New(t)
	sorted := slices.Sorted(maps.Keys(model))

	assert.Equal(len(model), rec.Len())
	assert.Equal(len(model), it.Len())
	assert.Equal(len(model) == 0, rec.IsEmpty())
	assert.Equal(len(model) == 0, it.IsEmpty())

	recKeys, recVals := collect(rec.InOrder())
	itKeys, itVals := collect(it.InOrder())
	assert.Equal(sorted, recKeys)
	assert.Equal(sorted, itKeys)
	assert.Equal(recVals, itVals)

	for _, k := range sorted {
		v, ok := rec.Get(k)
		assert.True(ok)
		assert.Equal(model[k], v)
		v, ok = it.Get(k)
		assert.True(ok)
		assert.Equal(model[k], v)
	}

	// shape-dependent traversals must agree between engines
	recPre, _ := collect(rec.PreOrder())
	itPre, _ := collect(it.PreOrder())
	assert.Equal(recPre, itPre)
	recPost, _ := collect(rec.PostOrder())
	itPost, _ := collect(it.PostOrder())
	assert.Equal(recPost, itPost)
	recLevel, _ := collect(rec.LevelOrder())
	itLevel, _ := collect(it.LevelOrder())
	assert.Equal(recLevel, itLevel)
	assert.Equal(rec.Height(), it.Height())

	if len(sorted) > 0 {
		k, v, ok := rec.Min()
		assert.True(ok)
		assert.Equal(sorted[0], k)
		assert.Equal(model[k], v)
		k, v, ok = it.Min()
		assert.True(ok)
		assert.Equal(sorted[0], k)
		assert.Equal(model[k], v)

		k, v, ok = rec.Max()
		assert.True(ok)
		assert.Equal(sorted[len(sorted)-1], k)
		assert.Equal(model[k], v)
		k, v, ok = it.Max()
		assert.True(ok)
		assert.Equal(sorted[len(sorted)-1], k)
		assert.Equal(model[k], v)
	} else {
		_, _, ok := rec.Min()
		assert.False(ok)
		_, _, ok = it.Max()
		assert.False(ok)
	}

	// successor/predecessor probes, present and absent keys alike
	probes := []int{-1, 0, keyRange / 2, keyRange - 1, keyRange}
	for range 10 {
		probes = append(probes, rand.Intn(keyRange))
	}
	for _, p := range probes {
		i, found := slices.BinarySearch(sorted, p)
		j := i
		if found {
			j = i + 1
		}
		wantOK := j < len(sorted)
		for _, tr := range []*Tree[int, string]{rec, it} {
			k, v, ok := tr.Successor(p)
			assert.Equal(wantOK, ok)
			if wantOK && ok {
				assert.Equal(sorted[j], k)
				assert.Equal(model[sorted[j]], v)
			}
			k, v, ok = tr.Predecessor(p)
			assert.Equal(i > 0, ok)
			if i > 0 && ok {
				assert.Equal(sorted[i-1], k)
				assert.Equal(model[sorted[i-1]], v)
			}
		}
	}
}

func TestRandomEngineOpsStringKeys(t *testing.T) {
	assert := assert.New(t)

	rec := newRecursive[string, int]()
	it := newIterative[string, int]()
	model := map[string]int{}
	var pool []string

	for i := range 500 {
		k := randomStr()
		pool = append(pool, k)
		rec.Insert(k, i)
		it.Insert(k, i)
		model[k] = i
	}
	for range 200 {
		// delete a known key and a (usually absent) fresh one
		k := pool[rand.Intn(len(pool))]
		rec.Delete(k)
		it.Delete(k)
		delete(model, k)
		k = randomStr()
		rec.Delete(k)
		it.Delete(k)
		delete(model, k)
	}

	sorted := slices.Sorted(maps.Keys(model))
	recKeys, _ := collect(rec.InOrder())
	itKeys, _ := collect(it.InOrder())
	assert.Equal(sorted, recKeys)
	assert.Equal(sorted, itKeys)
	recPre, _ := collect(rec.PreOrder())
	itPre, _ := collect(it.PreOrder())
	assert.Equal(recPre, itPre)
	assert.Equal(len(model), rec.Len())
	assert.Equal(len(model), it.Len())
}
