package order

import "crypto/rand"

// codeAlphabet excludes ambiguous characters (0/O, 1/I/L) so customers can
// read codes back over the phone.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 8

// GenerateCode produces a human-readable order code such as "CM-7KQ2M4XA".
// Uniqueness is enforced by the database constraint on the order_code column.
func GenerateCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return "CM-" + string(buf)
}
