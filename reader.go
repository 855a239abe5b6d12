package script

import "io"

// Parse reads all of r and parses it as a single script blob.
func Parse(r io.Reader) (*Script, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseScript(string(buf))
}

// ParseReaders reads each reader in order and parses the blobs as one
// logical script, like ParseScriptBlobs.
func ParseReaders(rs ...io.Reader) (*Script, error) {
	blobs := make([]string, 0, len(rs))
	for _, r := range rs {
		buf, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, string(buf))
	}
	return ParseScriptBlobs(blobs)
}
