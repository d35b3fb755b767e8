package suitx

import (
	"fmt"
	"strings"
)

type typeTagKind uint8

// Variant order of the ledger's TypeTag enum.
const (
	typeTagBool typeTagKind = iota
	typeTagU8
	typeTagU64
	typeTagU128
	typeTagAddress
	typeTagSigner
	typeTagVector
	typeTagStruct
	typeTagU16
	typeTagU32
	typeTagU256
)

var primitiveTypeTags = map[string]typeTagKind{
	"bool":    typeTagBool,
	"u8":      typeTagU8,
	"u16":     typeTagU16,
	"u32":     typeTagU32,
	"u64":     typeTagU64,
	"u128":    typeTagU128,
	"u256":    typeTagU256,
	"address": typeTagAddress,
	"signer":  typeTagSigner,
}

type StructTag struct {
	Address    Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

type TypeTag struct {
	kind    typeTagKind
	element *TypeTag
	strukt  *StructTag
}

// ParseTypeTag parses Move type syntax such as "u64", "vector<u8>" or
// "0x2::coin::Coin<0x2::sui::SUI>".
func ParseTypeTag(raw string) (TypeTag, error) {
	parser := typeTagParser{input: strings.ReplaceAll(raw, " ", "")}
	tag, err := parser.parse()
	if err != nil {
		return TypeTag{}, err
	}
	if parser.pos != len(parser.input) {
		return TypeTag{}, fmt.Errorf("unexpected trailing input in type %q", raw)
	}
	return tag, nil
}

func (t TypeTag) Encode(encoder *Encoder) {
	encoder.Variant(uint64(t.kind))
	switch t.kind {
	case typeTagVector:
		t.element.Encode(encoder)
	case typeTagStruct:
		encoder.Address(t.strukt.Address)
		encoder.String(t.strukt.Module)
		encoder.String(t.strukt.Name)
		encoder.Length(len(t.strukt.TypeParams))
		for _, param := range t.strukt.TypeParams {
			param.Encode(encoder)
		}
	}
}

type typeTagParser struct {
	input string
	pos   int
}

func (p *typeTagParser) parse() (TypeTag, error) {
	token := p.identifier()
	if token == "" {
		return TypeTag{}, fmt.Errorf("expected type at offset %d in %q", p.pos, p.input)
	}

	if kind, ok := primitiveTypeTags[token]; ok {
		return TypeTag{kind: kind}, nil
	}

	if token == "vector" {
		if err := p.expect("<"); err != nil {
			return TypeTag{}, err
		}
		element, err := p.parse()
		if err != nil {
			return TypeTag{}, err
		}
		if err := p.expect(">"); err != nil {
			return TypeTag{}, err
		}
		return TypeTag{kind: typeTagVector, element: &element}, nil
	}

	address, err := ParseAddress(token)
	if err != nil {
		return TypeTag{}, err
	}
	if err := p.expect("::"); err != nil {
		return TypeTag{}, err
	}
	module := p.identifier()
	if err := p.expect("::"); err != nil {
		return TypeTag{}, err
	}
	name := p.identifier()
	if module == "" || name == "" {
		return TypeTag{}, fmt.Errorf("struct type needs a module and a name in %q", p.input)
	}

	strukt := &StructTag{Address: address, Module: module, Name: name}
	if p.peek("<") {
		p.pos++
		for {
			param, err := p.parse()
			if err != nil {
				return TypeTag{}, err
			}
			strukt.TypeParams = append(strukt.TypeParams, param)
			if p.peek(",") {
				p.pos++
				continue
			}
			if err := p.expect(">"); err != nil {
				return TypeTag{}, err
			}
			break
		}
	}

	return TypeTag{kind: typeTagStruct, strukt: strukt}, nil
}

func (p *typeTagParser) identifier() string {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '_' || ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeTagParser) peek(token string) bool {
	return strings.HasPrefix(p.input[p.pos:], token)
}

func (p *typeTagParser) expect(token string) error {
	if !p.peek(token) {
		return fmt.Errorf("expected %q at offset %d in %q", token, p.pos, p.input)
	}
	p.pos += len(token)
	return nil
}
