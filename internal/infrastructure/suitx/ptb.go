package suitx

type argumentKind uint8

const (
	argumentGasCoin argumentKind = iota
	argumentInput
	argumentResult
	argumentNestedResult
)

type Argument struct {
	kind   argumentKind
	index  uint16
	nested uint16
}

func GasCoin() Argument { return Argument{kind: argumentGasCoin} }

func Input(index uint16) Argument { return Argument{kind: argumentInput, index: index} }

func Result(command uint16) Argument { return Argument{kind: argumentResult, index: command} }

func NestedResult(command, index uint16) Argument {
	return Argument{kind: argumentNestedResult, index: command, nested: index}
}

func (a Argument) Encode(encoder *Encoder) {
	encoder.Variant(uint64(a.kind))
	switch a.kind {
	case argumentInput, argumentResult:
		encoder.U16(a.index)
	case argumentNestedResult:
		encoder.U16(a.index)
		encoder.U16(a.nested)
	}
}

type ObjectRef struct {
	ObjectID Address
	Version  uint64
	Digest   [32]byte
}

func (r ObjectRef) Encode(encoder *Encoder) {
	encoder.Address(r.ObjectID)
	encoder.U64(r.Version)
	encoder.Bytes(r.Digest[:])
}

type callArgKind uint8

const (
	callArgPure callArgKind = iota
	callArgObject
)

type objectArgKind uint8

const (
	objectArgImmOrOwned objectArgKind = iota
	objectArgShared
)

// CallArg is one transaction input: pure bytes, an owned object reference
// or a shared object.
type CallArg struct {
	kind       callArgKind
	pure       []byte
	objectKind objectArgKind
	ref        ObjectRef

	sharedID             Address
	initialSharedVersion uint64
	mutable              bool
}

func PureCallArg(value []byte) CallArg {
	return CallArg{kind: callArgPure, pure: append([]byte(nil), value...)}
}

func OwnedObjectCallArg(ref ObjectRef) CallArg {
	return CallArg{kind: callArgObject, objectKind: objectArgImmOrOwned, ref: ref}
}

func SharedObjectCallArg(id Address, initialSharedVersion uint64, mutable bool) CallArg {
	return CallArg{
		kind:                 callArgObject,
		objectKind:           objectArgShared,
		sharedID:             id,
		initialSharedVersion: initialSharedVersion,
		mutable:              mutable,
	}
}

func (c CallArg) objectID() (Address, bool) {
	if c.kind != callArgObject {
		return Address{}, false
	}
	if c.objectKind == objectArgShared {
		return c.sharedID, true
	}
	return c.ref.ObjectID, true
}

func (c CallArg) Encode(encoder *Encoder) {
	encoder.Variant(uint64(c.kind))
	if c.kind == callArgPure {
		encoder.Bytes(c.pure)
		return
	}

	encoder.Variant(uint64(c.objectKind))
	if c.objectKind == objectArgImmOrOwned {
		c.ref.Encode(encoder)
		return
	}
	encoder.Address(c.sharedID)
	encoder.U64(c.initialSharedVersion)
	encoder.Bool(c.mutable)
}

type commandKind uint8

const (
	commandMoveCall commandKind = iota
	commandTransferObjects
	commandSplitCoins
	commandMergeCoins
)

type Command struct {
	kind commandKind

	pkg           Address
	module        string
	function      string
	typeArguments []TypeTag

	target    Argument
	arguments []Argument
}

func MoveCallCommand(pkg Address, module, function string, typeArguments []TypeTag, arguments []Argument) Command {
	return Command{
		kind:          commandMoveCall,
		pkg:           pkg,
		module:        module,
		function:      function,
		typeArguments: typeArguments,
		arguments:     arguments,
	}
}

func TransferObjectsCommand(objects []Argument, recipient Argument) Command {
	return Command{kind: commandTransferObjects, target: recipient, arguments: objects}
}

func SplitCoinsCommand(coin Argument, amounts []Argument) Command {
	return Command{kind: commandSplitCoins, target: coin, arguments: amounts}
}

func MergeCoinsCommand(destination Argument, sources []Argument) Command {
	return Command{kind: commandMergeCoins, target: destination, arguments: sources}
}

func (c Command) Encode(encoder *Encoder) {
	encoder.Variant(uint64(c.kind))
	switch c.kind {
	case commandMoveCall:
		encoder.Address(c.pkg)
		encoder.String(c.module)
		encoder.String(c.function)
		encoder.Length(len(c.typeArguments))
		for _, tag := range c.typeArguments {
			tag.Encode(encoder)
		}
		encodeArguments(encoder, c.arguments)
	case commandTransferObjects:
		encodeArguments(encoder, c.arguments)
		c.target.Encode(encoder)
	case commandSplitCoins, commandMergeCoins:
		c.target.Encode(encoder)
		encodeArguments(encoder, c.arguments)
	}
}

func encodeArguments(encoder *Encoder, arguments []Argument) {
	encoder.Length(len(arguments))
	for _, argument := range arguments {
		argument.Encode(encoder)
	}
}

type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []Command
}

func (p ProgrammableTransaction) Encode(encoder *Encoder) {
	encoder.Length(len(p.Inputs))
	for _, input := range p.Inputs {
		input.Encode(encoder)
	}
	encoder.Length(len(p.Commands))
	for _, command := range p.Commands {
		command.Encode(encoder)
	}
}

// KindBytes is the TransactionKind encoding dev-inspect expects.
func (p ProgrammableTransaction) KindBytes() []byte {
	encoder := Encoder{}
	encoder.Variant(0)
	p.Encode(&encoder)
	return encoder.Result()
}

// Builder collects inputs and commands. Object inputs are deduplicated by id;
// a shared object referenced both mutably and immutably becomes mutable.
type Builder struct {
	inputs   []CallArg
	objects  map[Address]uint16
	commands []Command
}

func NewBuilder() *Builder {
	return &Builder{objects: map[Address]uint16{}}
}

func (b *Builder) Pure(value []byte) Argument {
	b.inputs = append(b.inputs, PureCallArg(value))
	return Input(uint16(len(b.inputs) - 1))
}

func (b *Builder) Object(arg CallArg) Argument {
	id, _ := arg.objectID()
	if index, seen := b.objects[id]; seen {
		existing := &b.inputs[index]
		if existing.objectKind == objectArgShared && arg.mutable {
			existing.mutable = true
		}
		return Input(index)
	}

	b.inputs = append(b.inputs, arg)
	index := uint16(len(b.inputs) - 1)
	b.objects[id] = index
	return Input(index)
}

func (b *Builder) Command(command Command) Argument {
	b.commands = append(b.commands, command)
	return Result(uint16(len(b.commands) - 1))
}

func (b *Builder) Finish() ProgrammableTransaction {
	return ProgrammableTransaction{
		Inputs:   append([]CallArg(nil), b.inputs...),
		Commands: append([]Command(nil), b.commands...),
	}
}
