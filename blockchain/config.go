package blockchain

// Config is the bridge configuration handed over at node startup.
type Config struct {
	// ConsumingPrivateKey is the key paying peers, nil if none was supplied.
	ConsumingPrivateKey *string
}
