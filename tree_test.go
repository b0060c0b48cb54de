package huffpack

import "testing"

func TestCountSymbols(t *testing.T) {
	ft, err := countSymbols("hello")
	if err != nil {
		t.Fatalf("countSymbols: %v", err)
	}

	expected := map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}
	if len(ft.counts) != len(expected) {
		t.Fatalf("distinct symbols: expected %d, got %d", len(expected), len(ft.counts))
	}
	for r, want := range expected {
		if got := ft.counts[r]; got != want {
			t.Errorf("count of %q: expected %d, got %d", r, want, got)
		}
	}

	// First-seen order makes downstream construction deterministic.
	wantOrder := []rune{'h', 'e', 'l', 'o'}
	for i, r := range wantOrder {
		if ft.order[i] != r {
			t.Errorf("order[%d]: expected %q, got %q", i, r, ft.order[i])
		}
	}

	total := 0
	for _, c := range ft.counts {
		total += c
	}
	if total != 5 {
		t.Errorf("count sum: expected 5, got %d", total)
	}
}

func TestBuildTreeWeights(t *testing.T) {
	ft, err := countSymbols("aaabbc")
	if err != nil {
		t.Fatalf("countSymbols: %v", err)
	}
	root := buildTree(ft)
	if root == nil {
		t.Fatal("expected a root node")
	}
	if root.weight != 6 {
		t.Errorf("root weight: expected 6, got %d", root.weight)
	}
	if root.leaf() {
		t.Error("three distinct symbols must not collapse to a leaf root")
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	ft, err := countSymbols("zzzz")
	if err != nil {
		t.Fatalf("countSymbols: %v", err)
	}
	root := buildTree(ft)
	if !root.leaf() {
		t.Fatal("single distinct symbol must build a bare leaf")
	}
	if root.symbol != 'z' || root.weight != 4 {
		t.Errorf("leaf: expected ('z', 4), got (%q, %d)", root.symbol, root.weight)
	}

	codes, err := buildCodes(root)
	if err != nil {
		t.Fatalf("buildCodes: %v", err)
	}
	if sc := codes['z']; sc.codeLen != 1 || sc.code != 0 {
		t.Errorf("single-symbol code: expected 1-bit 0, got %d bits %b", sc.codeLen, sc.code)
	}
}

func TestBuildTreeDeterministicTieBreak(t *testing.T) {
	// All frequencies equal: the result depends entirely on the tie-break,
	// which must be stable across runs.
	var first, second codeTable
	for i := 0; i < 2; i++ {
		ft, err := countSymbols("abcdefgh")
		if err != nil {
			t.Fatalf("countSymbols: %v", err)
		}
		codes, err := buildCodes(buildTree(ft))
		if err != nil {
			t.Fatalf("buildCodes: %v", err)
		}
		if i == 0 {
			first = codes
		} else {
			second = codes
		}
	}

	for r, a := range first {
		b, ok := second[r]
		if !ok || a != b {
			t.Errorf("code for %q differs between runs: %+v vs %+v", r, a, b)
		}
	}
}

func TestCodeLengthsFollowFrequency(t *testing.T) {
	// A strongly skewed distribution: the dominant symbol must get the
	// shortest code and the rare ones the longest.
	ft, err := countSymbols("aaaaaaaaaaaaaaaabbbbbbbbccccdde")
	if err != nil {
		t.Fatalf("countSymbols: %v", err)
	}
	codes, err := buildCodes(buildTree(ft))
	if err != nil {
		t.Fatalf("buildCodes: %v", err)
	}

	if codes['a'].codeLen > codes['b'].codeLen ||
		codes['b'].codeLen > codes['c'].codeLen ||
		codes['c'].codeLen > codes['d'].codeLen {
		t.Errorf("code lengths do not follow frequency order: a=%d b=%d c=%d d=%d e=%d",
			codes['a'].codeLen, codes['b'].codeLen, codes['c'].codeLen,
			codes['d'].codeLen, codes['e'].codeLen)
	}
}
