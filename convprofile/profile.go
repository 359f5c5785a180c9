// Package convprofile loads named conversion profiles from YAML, so a CLI
// or service can select a source encoding, destination encoding, and mode
// by name instead of wiring charconv.Encoding/charconv.Mode values by hand.
//
// A profile file looks like:
//
//	profiles:
//	  web-ingest:
//	    source: utf8
//	    dest: utf16le
//	    mode: validating
//	  legacy-export:
//	    source: latin1
//	    dest: utf8
//	    mode: correct
package convprofile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/axiomhq/charconv"
)

// Profile names a single source/destination/mode conversion.
type Profile struct {
	Source charconv.Encoding
	Dest   charconv.Encoding
	Mode   charconv.Mode
}

// rawProfile mirrors Profile's YAML shape: plain lowercase strings, since
// charconv.Encoding and charconv.Mode live in another package and so can't
// carry UnmarshalYAML methods themselves.
type rawProfile struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
	Mode   string `yaml:"mode"`
}

// rawFile is the top-level shape of a profile YAML document.
type rawFile struct {
	Profiles map[string]rawProfile `yaml:"profiles"`
}

// Store is a loaded, name-indexed set of profiles.
type Store struct {
	profiles map[string]Profile
}

// Load parses raw as a profile YAML document.
func Load(raw []byte) (*Store, error) {
	var f rawFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("convprofile: parsing profiles: %w", err)
	}

	profiles := make(map[string]Profile, len(f.Profiles))
	for name, rp := range f.Profiles {
		src, err := encodingFromString(rp.Source)
		if err != nil {
			return nil, fmt.Errorf("convprofile: profile %q: %w", name, err)
		}
		dst, err := encodingFromString(rp.Dest)
		if err != nil {
			return nil, fmt.Errorf("convprofile: profile %q: %w", name, err)
		}
		mode, err := modeFromString(rp.Mode)
		if err != nil {
			return nil, fmt.Errorf("convprofile: profile %q: %w", name, err)
		}
		profiles[name] = Profile{Source: src, Dest: dst, Mode: mode}
	}
	return &Store{profiles: profiles}, nil
}

// Get returns the named profile, and whether it was found.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Names returns every profile name in the store, in no particular order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	return names
}

// Run executes the profile's conversion over src using charconv.Convert,
// regardless of the profile's Mode, and reports the full ConvertResult.
// Use RunWithMode to honor a profile's declared Mode.
func (p Profile) Run(src []byte) ([]byte, charconv.ConvertResult) {
	dst := make([]byte, charconv.LengthFor(p.Source, p.Dest, src))
	result := charconv.Convert(p.Source, p.Dest, src, dst)
	return dst[:result.OutputWritten], result
}

// RunWithMode executes the profile's conversion using the execution mode
// named by p.Mode (Validating, PureAscii, or Correct).
func (p Profile) RunWithMode(src []byte) []byte {
	dst := make([]byte, charconv.LengthFor(p.Source, p.Dest, src))
	switch p.Mode {
	case charconv.PureAscii:
		charconv.ConvertPure(p.Source, p.Dest, src, dst)
		return dst
	case charconv.Correct:
		n := charconv.ConvertCorrect(p.Source, p.Dest, src, dst)
		return dst[:n]
	default:
		result := charconv.Convert(p.Source, p.Dest, src, dst)
		return dst[:result.OutputWritten]
	}
}

// encodingFromString maps the plain lowercase strings profile files use
// ("utf8", "utf16le", "utf16be", "utf32", "latin1") onto charconv.Encoding
// values.
func encodingFromString(s string) (charconv.Encoding, error) {
	switch s {
	case "latin1":
		return charconv.Latin1, nil
	case "utf8":
		return charconv.UTF8, nil
	case "utf16le":
		return charconv.UTF16LE, nil
	case "utf16be":
		return charconv.UTF16BE, nil
	case "utf32":
		return charconv.UTF32, nil
	default:
		return 0, fmt.Errorf("convprofile: unknown encoding %q", s)
	}
}

func modeFromString(s string) (charconv.Mode, error) {
	switch s {
	case "validating":
		return charconv.Validating, nil
	case "pureascii":
		return charconv.PureAscii, nil
	case "correct":
		return charconv.Correct, nil
	default:
		return 0, fmt.Errorf("convprofile: unknown mode %q", s)
	}
}
