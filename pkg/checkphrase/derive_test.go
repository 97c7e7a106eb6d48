package checkphrase

import (
	"errors"
	"testing"

	"github.com/quantus-network/go-checkphrase/pkg/wordlist"
)

// Reference index vectors, cross-checked against the Python and Rust
// implementations. Indices are wordlist-independent, so they pin the bit
// packing exactly.
var goldenIndices = []struct {
	name    string
	address string
	indices []int
}{
	{"satoshi", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", []int{46, 145, 1556, 206, 877}},
	{"satoshi poisoned", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DixfNa", []int{961, 716, 998, 249, 1737}},
	{"ethereum", "0x742d35Cc6634C0532925a3b844Bc9e7595f5bE21", []int{512, 418, 168, 1245, 650}},
	{"polkadot", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", []int{1142, 225, 1755, 951, 1831}},
	{"cosmos", "cosmos1hsk6jryyqjfhp5dhc55tc9jtckygx0eph6dd02", []int{706, 761, 166, 1471, 93}},
	{"bitcoin bech32", "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", []int{1951, 1686, 1534, 935, 355}},
	{"quantus 1", "qzk7h3xH4Fmv2RqKpN8sT5jW9cY6gB1dL3mX0vQwEaUoZrJtS", []int{1906, 268, 73, 1599, 1543}},
	{"quantus 2", "qzkABCDEF123456789abcdefGHIJKLMNOPQRSTUVWXYZ000001", []int{1300, 975, 1665, 1736, 487}},
	{"quantus 3", "qzkXyZ987654321FeDcBaAbCdEfGhIjKlMnOpQrStUvWxYz99", []int{940, 654, 162, 352, 1779}},
	{"single byte", "a", []int{2032, 1074, 1127, 746, 1224}},
	{"utf-8", "木漏れ日", []int{355, 1322, 1284, 796, 545}},
}

func TestDeriveIndices_Golden(t *testing.T) {
	for _, tt := range goldenIndices {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveIndices([]byte(tt.address), DefaultLength)
			if err != nil {
				t.Fatalf("DeriveIndices() error: %v", err)
			}
			if !equalInts(got, tt.indices) {
				t.Errorf("indices = %v, want %v", got, tt.indices)
			}
		})
	}
}

func TestDeriveIndices_Lengths(t *testing.T) {
	// Same address at other checksum lengths. The key is a PBKDF2 prefix,
	// so shorter phrases share leading groups only when the byte/bit
	// packing lines up the same way.
	const addr = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

	tests := []struct {
		n       int
		indices []int
	}{
		{1, []int{46}},
		{4, []int{46, 145, 1556, 206}},
		{5, []int{46, 145, 1556, 206, 877}},
		{8, []int{46, 145, 1556, 206, 877, 1131, 522, 1269}},
	}

	for _, tt := range tests {
		got, err := DeriveIndices([]byte(addr), tt.n)
		if err != nil {
			t.Fatalf("DeriveIndices(n=%d) error: %v", tt.n, err)
		}
		if !equalInts(got, tt.indices) {
			t.Errorf("n=%d: indices = %v, want %v", tt.n, got, tt.indices)
		}
	}
}

func TestDerive(t *testing.T) {
	wl := wordlist.English()

	phrase, err := Derive([]byte("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"), wl, DefaultLength)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	if len(phrase) != DefaultLength {
		t.Fatalf("phrase length = %d, want %d", len(phrase), DefaultLength)
	}
	for i, word := range phrase {
		if !wl.Contains(word) {
			t.Errorf("phrase[%d] = %q not in wordlist", i, word)
		}
	}

	// Words must resolve through the canonical index order.
	for i, idx := range goldenIndices[0].indices {
		if phrase[i] != wl.Word(idx) {
			t.Errorf("phrase[%d] = %q, want wordlist[%d] = %q", i, phrase[i], idx, wl.Word(idx))
		}
	}
}

func TestDerive_Deterministic(t *testing.T) {
	wl := wordlist.English()
	const addr = "0x742d35Cc6634C0532925a3b844Bc9e7595f5bE21"

	a, err := Derive([]byte(addr), wl, DefaultLength)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	b, err := Derive([]byte(addr), wl, DefaultLength)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d: %q != %q", i, a[i], b[i])
		}
	}
}

func TestDerive_PoisonSensitivity(t *testing.T) {
	// The user-facing guarantee: a one-character address swap must change
	// the phrase somewhere.
	wl := wordlist.English()

	legit, err := Derive([]byte("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"), wl, DefaultLength)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	poisoned, err := Derive([]byte("1A1zP1eP5QGefi2DMPTfTL5SLmv7DixfNa"), wl, DefaultLength)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}

	same := true
	for i := range legit {
		if legit[i] != poisoned[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("poisoned variant derived identical phrase %v", legit)
	}
}

func TestDerive_Errors(t *testing.T) {
	wl := wordlist.English()

	if _, err := Derive(nil, wl, DefaultLength); !errors.Is(err, ErrEmptyAddress) {
		t.Errorf("empty address: err = %v, want ErrEmptyAddress", err)
	}
	if _, err := Derive([]byte{}, wl, DefaultLength); !errors.Is(err, ErrEmptyAddress) {
		t.Errorf("zero-length address: err = %v, want ErrEmptyAddress", err)
	}
	if _, err := Derive([]byte("addr"), wl, 0); !errors.Is(err, ErrBadLength) {
		t.Errorf("n=0: err = %v, want ErrBadLength", err)
	}
	if _, err := Derive([]byte("addr"), &wordlist.Wordlist{}, DefaultLength); !errors.Is(err, wordlist.ErrWrongSize) {
		t.Errorf("empty wordlist: err = %v, want ErrWrongSize", err)
	}
}

func TestKeyByteCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 2},
		{4, 6},
		{5, 7},
		{8, 11},
	}
	for _, tt := range tests {
		if got := KeyByteCount(tt.n); got != tt.want {
			t.Errorf("KeyByteCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func BenchmarkDerive(b *testing.B) {
	wl := wordlist.English()
	addr := []byte("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Derive(addr, wl, DefaultLength); err != nil {
			b.Fatal(err)
		}
	}
}
