package clash

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validate performs cheap structural checks that decoding deliberately
// skips. It says nothing about whether the server is reachable.
func Validate(n Node) error {
	switch v := n.(type) {
	case *SSNode:
		return checkEndpoint(v.Name, v.Server)
	case *TUICNode:
		if err := checkEndpoint(v.Name, v.Server); err != nil {
			return err
		}
		return checkUUID(v.UUID)
	case *VMessNode:
		if err := checkEndpoint(v.Name, v.Server); err != nil {
			return err
		}
		return checkUUID(v.UUID)
	case nil:
		return errors.New("nil node")
	}
	return fmt.Errorf("unsupported node %T", n)
}

func checkEndpoint(name, server string) error {
	if name == "" {
		return errors.New("name is empty")
	}
	if server == "" {
		return fmt.Errorf("%s: server is empty", name)
	}
	return nil
}

func checkUUID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return nil
}
