package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// errAborted el usuario abandonó el flujo actual (EOF / entrada cerrada).
// No es una falla: la operación en curso simplemente no se confirma.
var errAborted = errors.New("operación abandonada")

// readLine muestra el prompt y lee una línea recortada.
func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readRequired reintenta hasta obtener una línea no vacía.
func (c *CLI) readRequired(prompt string) (string, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(c.out, "El campo no puede estar vacío.")
	}
}

// readInt reintenta hasta obtener un entero válido.
func (c *CLI) readInt(prompt string) (int, error) {
	for {
		s, err := c.readRequired(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(c.out, "Debe ser un número entero.")
			continue
		}
		return n, nil
	}
}

// readPositiveInt reintenta hasta obtener un entero > 0.
func (c *CLI) readPositiveInt(prompt string) (int, error) {
	for {
		n, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if n <= 0 {
			fmt.Fprintln(c.out, "Debe ser mayor que cero.")
			continue
		}
		return n, nil
	}
}

// readDecimal reintenta hasta obtener un decimal >= 0.
func (c *CLI) readDecimal(prompt string) (decimal.Decimal, error) {
	for {
		s, err := c.readRequired(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
		if err != nil {
			fmt.Fprintln(c.out, "Debe ser un número.")
			continue
		}
		if d.IsNegative() {
			fmt.Fprintln(c.out, "No puede ser negativo.")
			continue
		}
		return d, nil
	}
}

// parseDecimal acepta coma o punto como separador decimal y rechaza negativos.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("valor negativo")
	}
	return d, nil
}

// readOptional lee una línea que puede quedar vacía; devuelve nil si se dejó
// en blanco (mantener valor actual en ediciones parciales).
func (c *CLI) readOptional(prompt string) (*string, error) {
	s, err := c.readLine(prompt)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// confirm pregunta s/n.
func (c *CLI) confirm(prompt string) (bool, error) {
	s, err := c.readLine(prompt + " (s/n): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(s, "s"), nil
}
