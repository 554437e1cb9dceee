package models

import "github.com/dmitrijs2005/bioadmin/internal/common"

// Credentials carries an operator login and secret for a single Login call.
// The value is transient: whoever constructs it hands it to Client.Login,
// which wipes the secret on every exit path. After the call the secret
// must read as all zeros.
type Credentials struct {
	LoginID string
	Secret  []byte
}

// Wipe overwrites the secret with zeros. Safe to call multiple times.
func (c *Credentials) Wipe() {
	common.WipeByteArray(c.Secret)
}
