package khmerlegacy_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/npillmayer/khmerlegacy"
	"github.com/npillmayer/khmerlegacy/fontdata"
	"github.com/npillmayer/khmerlegacy/internal/testdata"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func loadRegistry(t testing.TB) *fontdata.Registry {
	reg, err := fontdata.LoadFile(testdata.Path(testdata.FontData))
	if err != nil {
		t.Fatalf("cannot load font descriptions: %v", err)
	}
	return reg
}

// countingProvider counts how often fonts are resolved.
type countingProvider struct {
	*fontdata.Registry
	resolved int32
}

func (p *countingProvider) Resolve(name string) (*fontdata.Font, error) {
	atomic.AddInt32(&p.resolved, 1)
	return p.Registry.Resolve(name)
}

// brokenProvider knows every font but cannot resolve any.
type brokenProvider struct{}

var errBroken = errors.New("broken font data")

func (brokenProvider) FontType(name string) (string, bool) { return "broken", true }

func (brokenProvider) Resolve(name string) (*fontdata.Font, error) { return nil, errBroken }

var roundTrips = []struct {
	legacy  string
	unicode string
	back    string
}{
	{"ka", "កា", "ka"},
	{"eka", "កោ", "eka"},
	{"kSu", "ក្សុ", "kSv"},
	{"kKa", "ក្កា", "Wa"},
	{"..", "។", "|"},
	{"Qsd", "ស្រដ", "Rsd"},
	{"ka eka", "កា កោ", "ka eka"},
	{"", "", ""},
}

func TestLegacyToUnicode(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	for _, tt := range roundTrips {
		u, err := cv.LegacyToUnicode(tt.legacy, "Test Font S1")
		if err != nil {
			t.Fatal(err)
		}
		if u != tt.unicode {
			t.Errorf("expected %q to convert to %U, is %U", tt.legacy, []rune(tt.unicode), []rune(u))
		}
	}
}

func TestUnicodeToLegacy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	for _, tt := range roundTrips {
		l, err := cv.UnicodeToLegacy(tt.unicode, "tf s2")
		if err != nil {
			t.Fatal(err)
		}
		if l != tt.back {
			t.Errorf("expected %U to convert to %q, is %q", []rune(tt.unicode), tt.back, l)
		}
	}
}

func TestUnknownFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	if cv.IsConvertible("Limon S1") || cv.IsConvertible("khbase") {
		t.Errorf("expected unknown and hidden fonts not to be convertible")
	}
	if !cv.IsConvertible("TESTFONT") {
		t.Errorf("expected font type to be convertible")
	}
	u, err := cv.LegacyToUnicode("េក", "Limon S1")
	if err != nil || u != "កេ" {
		t.Errorf("expected unknown font to reorder only, have %U (%v)", []rune(u), err)
	}
	l, err := cv.UnicodeToLegacy("កេ", "Limon S1")
	if err != nil || l != "" {
		t.Errorf("expected empty legacy text for unknown font, have %q (%v)", l, err)
	}
	if _, ok := cv.DefaultFont("Limon S1"); ok {
		t.Errorf("expected no default font for unknown font")
	}
	if d, ok := cv.DefaultFont("TF S2"); !ok || d != "Test Font S1" {
		t.Errorf("expected default font 'Test Font S1', is %q", d)
	}
}

func TestResolveFailure(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(brokenProvider{})
	if _, err := cv.LegacyToUnicode("ka", "any"); !errors.Is(err, errBroken) {
		t.Errorf("expected resolve error to be reported, is %v", err)
	}
	if _, err := cv.UnicodeToLegacy("ក", "any"); !errors.Is(err, errBroken) {
		t.Errorf("expected resolve error to be reported, is %v", err)
	}
}

func TestFontCache(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := &countingProvider{Registry: loadRegistry(t)}
	cv := khmerlegacy.NewConverter(p)
	for _, name := range []string{"testfont", "Test Font S1", "TF S2", "testfont"} {
		if _, err := cv.LegacyToUnicode("ka", name); err != nil {
			t.Fatal(err)
		}
	}
	if n := atomic.LoadInt32(&p.resolved); n != 1 {
		t.Errorf("expected font type to be resolved once, was resolved %d times", n)
	}
	p = &countingProvider{Registry: loadRegistry(t)}
	cv = khmerlegacy.NewConverter(p, khmerlegacy.WithCacheExpiration(time.Millisecond))
	_, _ = cv.LegacyToUnicode("ka", "testfont")
	time.Sleep(10 * time.Millisecond)
	_, _ = cv.LegacyToUnicode("ka", "testfont")
	if n := atomic.LoadInt32(&p.resolved); n != 2 {
		t.Errorf("expected expired font to be resolved again, was resolved %d times", n)
	}
}

func TestConcurrentConversions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, tt := range roundTrips {
					if u, _ := cv.LegacyToUnicode(tt.legacy, "testfont"); u != tt.unicode {
						errs <- tt.legacy
						return
					}
					if l, _ := cv.UnicodeToLegacy(tt.unicode, "testfont"); l != tt.back {
						errs <- tt.unicode
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent conversion of %q failed", e)
	}
}

func TestRoundTripStability(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	words := []string{"ka", "eka", "kSu", "kKa", "..", "Qsd", "nuHa", "kRa", "ek", "tu",
		"s;", "bTi", "mMi", "pa", "epa", "kYa", "hI", "lu", "jw", "kSv", "kDa", "sNe"}
	words = append(words, strings.Join(words, " "))
	for _, w := range words {
		u1, _ := cv.LegacyToUnicode(w, "testfont")
		l1, _ := cv.UnicodeToLegacy(u1, "testfont")
		u2, _ := cv.LegacyToUnicode(l1, "testfont")
		l2, _ := cv.UnicodeToLegacy(u2, "testfont")
		if u2 != u1 {
			t.Errorf("%q: Unicode not stable after one cycle, %U then %U", w, []rune(u1), []rune(u2))
		}
		if l2 != l1 {
			t.Errorf("%q: legacy text not stable after one cycle, %q then %q", w, l1, l2)
		}
	}
}

func ExampleConverter_LegacyToUnicode() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	reg, err := fontdata.LoadFile(testdata.Path(testdata.FontData))
	if err != nil {
		fmt.Println(err)
		return
	}
	cv := khmerlegacy.NewConverter(reg)
	u, _ := cv.LegacyToUnicode("eka", "Test Font S1")
	fmt.Printf("%U\n", []rune(u))
	l, _ := cv.UnicodeToLegacy(u, "Test Font S1")
	fmt.Println(l)
	// Output:
	// [U+1780 U+17C4]
	// eka
}
