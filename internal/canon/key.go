package canon

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrNoFields reports a key derivation with nothing to derive from.
var ErrNoFields = errors.New("no key fields")

// FieldSeparator joins normalized fields before hashing. Normalized text never
// contains it, so ("a b", "c") and ("a", "b c") hash differently.
const FieldSeparator = "|"

// KeyLength is the number of hex characters in a Key.
const KeyLength = md5.Size * 2

// Key is a content-addressed identifier derived from normalized text fields.
type Key string

// String implements fmt.Stringer.
func (k Key) String() string { return string(k) }

// Valid reports whether k has the shape DeriveKey produces.
func (k Key) Valid() bool {
	if len(k) != KeyLength {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// DeriveKey normalizes each field, joins them in the given order, and hashes
// the result. Field order is significant. An empty field list hashes the
// same as a single empty field, so DeriveKey() == DeriveKey(""); use
// DeriveKeyStrict where that collision matters.
func DeriveKey(fields ...string) Key {
	normalized := make([]string, len(fields))
	for i, field := range fields {
		normalized[i] = Normalize(field)
	}
	sum := md5.Sum([]byte(strings.Join(normalized, FieldSeparator)))
	return Key(hex.EncodeToString(sum[:]))
}

// DeriveKeyStrict is DeriveKey with NormalizeStrict semantics: any field that
// is not valid UTF-8 yields ErrEncoding, and an empty field list yields
// ErrNoFields.
func DeriveKeyStrict(fields ...string) (Key, error) {
	if len(fields) == 0 {
		return "", ErrNoFields
	}
	for _, field := range fields {
		if _, err := NormalizeStrict(field); err != nil {
			return "", err
		}
	}
	return DeriveKey(fields...), nil
}

// ArtistKey identifies a single artist by name.
func ArtistKey(name string) Key {
	return DeriveKey(name)
}

// SongKey identifies a song by title and credited artist.
func SongKey(song, artist string) Key {
	return DeriveKey(song, artist)
}
