// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/fault"
)

type stringItem struct {
	s string
}

func compareStrings(a *stringItem, b *stringItem) int {
	return strings.Compare(a.s, b.s)
}

func stringLabel(item *stringItem) string {
	return item.s
}

// record with a key and a tag to tell equal keys apart
type item struct {
	key int
	tag string
}

func compareItems(a *item, b *item) int {
	return cmp.Compare(a.key, b.key)
}

func printItem(w io.Writer, i *item) {
	fmt.Fprintf(w, "%d", i.key)
}

func itemLabel(i *item) string {
	return fmt.Sprintf("%d%s", i.key, i.tag)
}

func tags(tree *avl.Tree[item]) string {
	s := ""
	for {
		i, ok := tree.GetNextResult()
		if !ok {
			return s
		}
		s += i.tag
	}
}

func checkTree[R any](t *testing.T, tree *avl.Tree[R], label func(*R) string, stage string) {
	t.Helper()
	if !tree.CheckBalance() || !tree.CheckCounts() {
		depth := tree.Print(os.Stdout, label)
		t.Logf("depth: %d", depth)
		t.Fatalf("%s: inconsistent tree", stage)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// lots of duplicates must be refused without changing the node count
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}

	tree := avl.New(compareStrings)
	unique := make(map[string]struct{})
	for _, key := range addList {
		err := tree.Insert(&stringItem{key})
		if _, ok := unique[key]; ok {
			assert.Equal(t, fault.ErrDuplicateKey, err, "duplicate: %q", key)
			continue
		}
		assert.Nil(t, err, "insert: %q", key)
		unique[key] = struct{}{}
	}
	assert.Equal(t, len(unique), tree.Count(), "count")
	checkTree(t, tree, stringLabel, "duplicates")
}

// delete a prefix of the list, check the tree, then delete the rest
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avl.New(compareStrings)
		for _, key := range addList {
			if err := tree.Insert(&stringItem{key}); nil != err {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
		}
		checkTree(t, tree, stringLabel, "add")

		for _, key := range addList[:i] {
			r, ok := tree.Delete(&stringItem{key}, nil)
			if !ok || r.s != key {
				t.Fatalf("delete returned: %v  expected: %q", r, key)
			}
		}
		checkTree(t, tree, stringLabel, "delete")

		for _, key := range addList[i:] {
			r, ok := tree.Delete(&stringItem{key}, nil)
			if !ok || r.s != key {
				t.Fatalf("delete returned: %v  expected: %q", r, key)
			}
		}
		if !tree.IsEmpty() || 0 != tree.Count() {
			depth := tree.Print(os.Stdout, stringLabel)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree forwards and backwards
func doTraverse(t *testing.T, addList []string) {

	tree := avl.New(compareStrings)
	for _, key := range addList {
		_ = tree.Insert(&stringItem{key})
	}

	expected := append([]string(nil), addList...)
	sort.Strings(expected)

	forward := make([]string, 0, len(expected))
	tree.Traverse(func(i *stringItem) {
		forward = append(forward, i.s)
	})
	assert.Equal(t, expected, forward, "forward")

	reverse := make([]string, 0, len(expected))
	tree.TraverseReverse(func(i *stringItem) {
		reverse = append(reverse, i.s)
	})
	for i, j := 0, len(reverse)-1; i < j; i, j = i+1, j-1 {
		reverse[i], reverse[j] = reverse[j], reverse[i]
	}
	assert.Equal(t, expected, reverse, "reverse")

	assert.Equal(t, expected[0], tree.First().s, "first")
	assert.Equal(t, expected[len(expected)-1], tree.Last().s, "last")
}

func TestAscendingRotation(t *testing.T) {
	tree := avl.New(compareItems)
	for _, k := range []int{10, 20, 30} {
		assert.Nil(t, tree.Insert(&item{key: k}), "insert: %d", k)
	}

	buffer := &bytes.Buffer{}
	assert.True(t, tree.PrintNested(buffer, printItem, true), "print")
	assert.Equal(t, "   2. 30\n1. 20\n   2. 10\n", buffer.String(), "shape")
	assert.Equal(t, uint64(1), tree.Rotations(), "rotations")
	assert.Equal(t, 2, tree.Height(), "height")
	checkTree(t, tree, itemLabel, "ascending")
}

func TestDeleteRoot(t *testing.T) {
	tree := avl.New(compareItems)
	for _, k := range []int{20, 10, 30} {
		assert.Nil(t, tree.Insert(&item{key: k}), "insert: %d", k)
	}

	r, ok := tree.Delete(&item{key: 20}, nil)
	assert.True(t, ok, "delete")
	assert.Equal(t, 20, r.key, "deleted key")
	assert.Equal(t, 2, tree.Count(), "count")

	// predecessor replaces the root
	buffer := &bytes.Buffer{}
	assert.True(t, tree.PrintNested(buffer, printItem, false), "print")
	assert.Equal(t, "   30\n10\n", buffer.String(), "shape")
	checkTree(t, tree, itemLabel, "root delete")
}

func TestDuplicates(t *testing.T) {
	tree := avl.New(compareItems, avl.AllowDuplicates[item]())
	assert.True(t, tree.AllowsDuplicates(), "allows duplicates")

	records := map[string]*item{}
	sequence := []item{
		{5, "a"}, {3, "x"}, {5, "b"}, {5, "c"}, {5, "d"},
		{1, "y"}, {5, "e"}, {7, "z"}, {5, "f"},
	}
	for _, s := range sequence {
		r := &item{key: s.key, tag: s.tag}
		records[s.tag] = r
		assert.Nil(t, tree.Insert(r), "insert: %v", s)
		checkTree(t, tree, itemLabel, "insert")
	}
	assert.NotZero(t, tree.Rotations(), "no rotation was forced")

	assert.Equal(t, 6, tree.Search(&item{key: 5}), "search count")
	assert.Equal(t, 6, tree.PendingResults(), "pending")
	assert.Equal(t, "abcdef", tags(tree), "search order")

	// exact record among equal keys
	assert.True(t, tree.DeleteAt(records["e"]), "delete at")
	checkTree(t, tree, itemLabel, "delete at")
	tree.Search(&item{key: 5})
	assert.Equal(t, "abcdf", tags(tree), "after delete at")

	// address not in tree
	assert.False(t, tree.DeleteAt(&item{key: 5, tag: "e"}), "delete missing address")
	assert.Equal(t, 8, tree.Count(), "count unchanged")

	// confirmation selects one of the equal keys
	r, ok := tree.Delete(&item{key: 5}, func(candidate *item) bool {
		return "c" == candidate.tag
	})
	assert.True(t, ok, "confirmed delete")
	assert.Equal(t, records["c"], r, "confirmed record")
	checkTree(t, tree, itemLabel, "confirmed delete")

	// nothing confirmed
	r, ok = tree.Delete(&item{key: 5}, func(*item) bool { return false })
	assert.False(t, ok, "rejected delete")
	assert.Nil(t, r, "rejected record")
	assert.Equal(t, 7, tree.Count(), "count after reject")

	tree.Search(&item{key: 5})
	assert.Equal(t, "abdf", tags(tree), "remaining duplicates")
}

func TestManyDuplicateResults(t *testing.T) {
	tree := avl.New(compareItems, avl.AllowDuplicates[item]())

	const n = 200
	expected := ""
	for i := 0; i < n; i += 1 {
		tag := string(rune('a' + i%26))
		expected += tag
		assert.Nil(t, tree.Insert(&item{key: 42, tag: tag}), "insert: %d", i)
		assert.Nil(t, tree.Insert(&item{key: i, tag: "-"}), "other: %d", i)
	}
	checkTree(t, tree, itemLabel, "insert")

	// 42 appears once more among the other keys
	assert.NotPanics(t, func() {
		assert.Equal(t, n+1, tree.Search(&item{key: 42}), "search count")
	}, "search")
	assert.Equal(t, n+1, tree.PendingResults(), "pending")

	got := tags(tree)
	assert.Equal(t, n+1, len(got), "all results delivered")
	assert.Equal(t, expected, strings.Replace(got, "-", "", 1), "insertion order")
}

func TestUniqueDeleteRejected(t *testing.T) {
	tree := avl.New(compareItems)
	for k := 0; k < 10; k += 1 {
		_ = tree.Insert(&item{key: k})
	}

	r, ok := tree.Delete(&item{key: 4}, func(*item) bool { return false })
	assert.False(t, ok, "rejected")
	assert.Nil(t, r, "record")

	assert.False(t, tree.DeleteAt(&item{key: 4}), "wrong address")
	_, ok = tree.Delete(&item{key: 42}, nil)
	assert.False(t, ok, "missing key")
	assert.Equal(t, 10, tree.Count(), "count")
	checkTree(t, tree, itemLabel, "rejected")
}

func TestSearchUnique(t *testing.T) {
	tree := avl.New(compareItems)
	for k := 0; k < 20; k += 2 {
		_ = tree.Insert(&item{key: k, tag: fmt.Sprintf("t%d", k)})
	}

	assert.Equal(t, 1, tree.Search(&item{key: 8}), "found")
	assert.Equal(t, 0, tree.Search(&item{key: 9}), "not found")

	// a new search discards undelivered results
	assert.Equal(t, 1, tree.Search(&item{key: 4}), "found")
	assert.Equal(t, 1, tree.Search(&item{key: 6}), "found")
	r, ok := tree.GetNextResult()
	assert.True(t, ok, "result")
	assert.Equal(t, "t6", r.tag, "tag")

	_, ok = tree.GetNextResult()
	assert.False(t, ok, "underflow")
	assert.Equal(t, 10, tree.Count(), "count after underflow")

	tree.Search(&item{key: 2})
	tree.FlushSearch()
	assert.Zero(t, tree.PendingResults(), "flushed")
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New(compareItems)

	assert.True(t, tree.IsEmpty(), "empty")
	assert.False(t, tree.IsFull(), "full")
	assert.Nil(t, tree.First(), "first")
	assert.Nil(t, tree.Last(), "last")
	assert.Zero(t, tree.Height(), "height")
	assert.Zero(t, tree.Search(&item{key: 1}), "search")
	_, ok := tree.GetNextResult()
	assert.False(t, ok, "underflow")
	_, ok = tree.Delete(&item{key: 1}, nil)
	assert.False(t, ok, "delete")
	assert.False(t, tree.PrintNested(io.Discard, printItem, true), "print")
	assert.Zero(t, tree.Filter(func(*item, *item) bool { return true }, func(*item) {}, nil), "filter")
	assert.Equal(t, fault.ErrNilRecord, tree.Insert(nil), "nil insert")
}

func TestFilter(t *testing.T) {
	tree := avl.New(compareItems)
	for k := 1; k <= 20; k += 1 {
		_ = tree.Insert(&item{key: k})
	}

	visited := []int{}
	n := tree.Filter(func(record *item, target *item) bool {
		return 0 == record.key%target.key
	}, func(record *item) {
		visited = append(visited, record.key)
	}, &item{key: 3})

	assert.Equal(t, 6, n, "count")
	assert.Equal(t, []int{3, 6, 9, 12, 15, 18}, visited, "visited")
}

func TestMaximumNodes(t *testing.T) {
	tree := avl.New(compareItems, avl.WithMaximumNodes[item](3))

	for k := 0; k < 3; k += 1 {
		assert.Nil(t, tree.Insert(&item{key: k}), "insert: %d", k)
	}
	assert.True(t, tree.IsFull(), "full")
	assert.Equal(t, fault.ErrTreeFull, tree.Insert(&item{key: 9}), "overflow")
	assert.True(t, fault.IsErrProcess(tree.Insert(&item{key: 9})), "process error")
	assert.Equal(t, 3, tree.Count(), "count")

	_, ok := tree.Delete(&item{key: 1}, nil)
	assert.True(t, ok, "delete")
	assert.False(t, tree.IsFull(), "not full")
	assert.Nil(t, tree.Insert(&item{key: 9}), "insert after delete")
	checkTree(t, tree, itemLabel, "limit")
}

func TestDuplicateRefusedKeepsCapacity(t *testing.T) {
	tree := avl.New(compareItems, avl.WithMaximumNodes[item](2))

	assert.Nil(t, tree.Insert(&item{key: 1}), "insert")
	assert.Equal(t, fault.ErrDuplicateKey, tree.Insert(&item{key: 1}), "duplicate")
	assert.Nil(t, tree.Insert(&item{key: 2}), "second insert")
	assert.True(t, tree.CheckCounts(), "counts")
}

func TestInsertNew(t *testing.T) {
	tree := avl.New(compareItems)
	_, err := tree.InsertNew()
	assert.Equal(t, fault.ErrNoFactory, err, "no factory")

	next := 0
	tree = avl.New(compareItems, avl.WithFactory[item](func() *item {
		next += 1
		return &item{key: next}
	}))
	for i := 1; i <= 5; i += 1 {
		r, err := tree.InsertNew()
		assert.Nil(t, err, "insert new")
		assert.Equal(t, i, r.key, "key")
	}
	assert.Equal(t, 5, tree.Count(), "count")
	assert.Equal(t, 5, tree.Last().key, "last")
}

func TestOwner(t *testing.T) {
	destroyed := map[*item]int{}
	owner := avl.NewOwner(compareItems, func(r *item) {
		destroyed[r] += 1
	})

	records := make([]*item, 10)
	for k := range records {
		records[k] = &item{key: k}
		assert.Nil(t, owner.Insert(records[k]), "insert: %d", k)
	}

	// preserve leaves the record alone
	assert.True(t, owner.DeleteAtWith(records[3], avl.Preserve), "preserve")
	assert.Zero(t, destroyed[records[3]], "preserved record destroyed")

	r, ok := owner.DeleteWith(&item{key: 4}, nil, avl.Destroy)
	assert.True(t, ok, "destroy")
	assert.Equal(t, records[4], r, "record")
	assert.Equal(t, 1, destroyed[records[4]], "destroy count")

	// the embedded tree never destroys
	_, ok = owner.Delete(&item{key: 5}, nil)
	assert.True(t, ok, "tree delete")
	assert.Zero(t, destroyed[records[5]], "tree delete destroyed")

	assert.False(t, owner.DeleteAtWith(records[4], avl.Destroy), "already gone")
	assert.Equal(t, 1, destroyed[records[4]], "destroyed twice")

	owner.Close(avl.Destroy)
	assert.True(t, owner.IsEmpty(), "empty after close")
	assert.Zero(t, owner.Count(), "count after close")
	for k, r := range records {
		expected := 1
		if 3 == k || 5 == k {
			expected = 0
		}
		assert.Equal(t, expected, destroyed[r], "destroyed: %d", k)
	}

	// reusable after close
	assert.Nil(t, owner.Insert(&item{key: 1}), "insert after close")
	owner.Close(avl.Preserve)
	assert.Equal(t, 8, len(destroyed), "preserve close destroyed")
}

func TestOwnerInsertNewFailureDestroys(t *testing.T) {
	destroyed := 0
	owner := avl.NewOwner(compareItems, func(*item) {
		destroyed += 1
	}, avl.WithFactory[item](func() *item {
		return &item{key: 1}
	}))

	_, err := owner.InsertNew()
	assert.Nil(t, err, "first")
	_, err = owner.InsertNew()
	assert.Equal(t, fault.ErrDuplicateKey, err, "second")
	assert.Equal(t, 1, destroyed, "destroyed")
	assert.Equal(t, 1, owner.Count(), "count")
}

func TestRoundTrip(t *testing.T) {
	const total = 500

	for _, duplicates := range []bool{false, true} {
		options := []avl.Option[item]{}
		if duplicates {
			options = append(options, avl.AllowDuplicates[item]())
		}
		tree := avl.New(compareItems, options...)

		rng := rand.New(rand.NewSource(5467))
		records := make([]*item, total)
		for i := range records {
			k := i
			if duplicates {
				k = rng.Intn(total / 10)
			}
			records[i] = &item{key: k, tag: fmt.Sprintf("#%d", i)}
			assert.Nil(t, tree.Insert(records[i]), "insert: %d", i)
		}
		checkTree(t, tree, itemLabel, "round trip insert")

		rng.Shuffle(len(records), func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})
		for i, r := range records {
			if !tree.DeleteAt(r) {
				t.Fatalf("delete at: %d  record: %v", i, *r)
			}
			if 0 == i%50 {
				checkTree(t, tree, itemLabel, "round trip delete")
			}
		}
		assert.True(t, tree.IsEmpty(), "empty")
		assert.Zero(t, tree.Count(), "count")
		assert.True(t, tree.CheckCounts(), "counts")
	}
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000, false)
	randomTree(t, 3400, 2760, true)
	randomTree(t, 5467, 1234, true)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000, true)
	}
}

func randomTree(t *testing.T, total int, toDelete int, duplicates bool) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	options := []avl.Option[item]{}
	if duplicates {
		options = append(options, avl.AllowDuplicates[item]())
	}
	tree := avl.New(compareItems, options...)
	rng := rand.New(rand.NewSource(int64(total + toDelete)))

	present := make(map[int]int)
	d := make([]*item, 0, toDelete)
	for i := 0; i < total; i += 1 {
		r := &item{key: rng.Intn(10000)}
		err := tree.Insert(r)
		if !duplicates && present[r.key] > 0 {
			assert.Equal(t, fault.ErrDuplicateKey, err, "duplicate")
			continue
		}
		assert.Nil(t, err, "insert")
		present[r.key] += 1
		if len(d) < toDelete {
			d = append(d, r)
		}
	}
	checkTree(t, tree, itemLabel, "random insert")

	for _, r := range d {
		if _, ok := tree.Delete(r, nil); !ok {
			t.Fatalf("delete: %d not found", r.key)
		}
		present[r.key] -= 1
		if !tree.CheckBalance() {
			depth := tree.Print(os.Stdout, itemLabel)
			t.Logf("depth: %d", depth)
			t.Fatalf("inconsistent tree")
		}
	}
	assert.True(t, tree.CheckCounts(), "counts")

	expected := 0
	for k, n := range present {
		expected += n
		if n > 0 {
			assert.Equal(t, n, tree.Search(&item{key: k}), "search: %d", k)
		}
	}
	tree.FlushSearch()
	assert.Equal(t, expected, tree.Count(), "count")
}

func TestBalanceString(t *testing.T) {
	assert.Equal(t, "LH", avl.LeftHigh.String(), "left")
	assert.Equal(t, "EH", avl.Even.String(), "even")
	assert.Equal(t, "RH", avl.RightHigh.String(), "right")
	assert.Equal(t, "destroy", avl.Destroy.String(), "disposition")
}
