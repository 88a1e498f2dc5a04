package credential

import "golang.org/x/crypto/bcrypt"

// Work factor for bcrypt. High enough to make brute force expensive, low
// enough to keep login latency tolerable.
const hashCost = 10

// Hash derives a salted one-way hash from a plaintext password. The salt is
// generated per call and embedded in the output.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. bcrypt's
// comparison runs in constant time relative to the mismatch position.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
