package language

import (
	"context"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

const sampleVoices = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af               
 5  bg              --/-      Bulgarian          zls/bg               
 2  en-gb           --/M      English_(Great_Britain) gmw/en          (en 2)
 5  en-us           --/M      English_(America)  gmw/en-US            (en 3)
 5  es-419          --/M      Spanish_(Latin_America) roa/es-419      (es-mx 6)(es 4)
garbage line
`

func TestParseVoices(t *testing.T) {
	ls, err := ParseVoices(strings.NewReader(sampleVoices))
	if err != nil {
		t.Fatalf("ParseVoices() error = %v", err)
	}

	var names []string
	for _, l := range ls.All() {
		names = append(names, l.Name)
	}
	want := []string{"af", "bg", "en-gb", "en", "en-us", "es-419", "es-mx", "es"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("languages = %v, want %v", names, want)
	}

	en, ok := ls.Get("en")
	if !ok {
		t.Fatal("language en not registered")
	}
	if got := voiceFiles(en); !reflect.DeepEqual(got, []string{"gmw/en-US", "gmw/en"}) {
		t.Errorf("en voices = %v", got)
	}

	bg, _ := ls.Get("bg")
	def, _ := bg.DefaultVoice()
	if def != (Voice{File: "zls/bg", Name: "Bulgarian", Priority: 5}) {
		t.Errorf("bg default voice = %+v", def)
	}

	esmx, _ := ls.Get("es-mx")
	if v, _ := esmx.DefaultVoice(); v.Priority != 6 || v.File != "roa/es-419" {
		t.Errorf("es-mx default voice = %+v", v)
	}
}

func TestParseVoicesEmpty(t *testing.T) {
	ls, err := ParseVoices(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseVoices() error = %v", err)
	}
	if !ls.IsEmpty() {
		t.Errorf("expected no languages, got %d", ls.Len())
	}
}

func TestSupportedMissingBinary(t *testing.T) {
	ls := Supported(context.Background(), "definitely-not-espeak-ng")
	if !ls.IsEmpty() {
		t.Errorf("expected empty registry, got %d languages", ls.Len())
	}
}

func TestSupported(t *testing.T) {
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("espeak-ng not installed")
	}

	ls := Supported(context.Background(), "")
	if ls.IsEmpty() {
		t.Error("expected at least one supported language")
	}
}
