// Package example shows the two entry points most callers reach for:
// parsing EDN text into a Value tree, and decoding that tree straight into
// a Go struct.
package example

import "github.com/edn-format/goedn/edn"

// Profile is a Go record shape for the EDN document below.
type Profile struct {
	Name    string   `edn:"name"`
	Age     uint64   `edn:"age"`
	Tags    []string `edn:"tags"`
	Cool    bool     `edn:"cool"`
	Manager *Profile `edn:"manager"`
}

const profileEDN = `{:name "rose" :age 66 :tags [:staff :oncall] :cool true :manager nil}`

// LoadProfile parses profileEDN and decodes it into a Profile.
func LoadProfile() (Profile, error) {
	v, err := edn.Parse(profileEDN)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := edn.Unmarshal(v, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
