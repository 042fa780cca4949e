package domain

// Envelope is the wire-format message posted to and fetched from the
// relay. The core consumes Ephemeral and Index; Nonce and Cipher belong to
// the authenticated-encryption collaborator.
type Envelope struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Ephemeral PointBytes `json:"ephemeral"`
	Index     uint32     `json:"index"`
	Nonce     []byte     `json:"nonce"`
	Cipher    []byte     `json:"cipher"`
	Timestamp int64      `json:"timestamp"`
}

// DecryptedMessage is what MessageService.Receive returns for each
// envelope that authenticated under the current epoch.
type DecryptedMessage struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Plaintext []byte `json:"plaintext"`
	Timestamp int64  `json:"timestamp"`
}
