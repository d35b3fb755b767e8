package suitx

type GasData struct {
	Payment []ObjectRef
	Owner   Address
	Price   uint64
	Budget  uint64
}

// TransactionData is the V1 envelope the sender signs. Expiration is
// always None.
type TransactionData struct {
	Kind   ProgrammableTransaction
	Sender Address
	Gas    GasData
}

func (t TransactionData) Bytes() []byte {
	encoder := Encoder{}
	encoder.Variant(0)

	encoder.Variant(0)
	t.Kind.Encode(&encoder)

	encoder.Address(t.Sender)

	encoder.Length(len(t.Gas.Payment))
	for _, ref := range t.Gas.Payment {
		ref.Encode(&encoder)
	}
	encoder.Address(t.Gas.Owner)
	encoder.U64(t.Gas.Price)
	encoder.U64(t.Gas.Budget)

	encoder.Variant(0)
	return encoder.Result()
}
