package domain

import "github.com/shopspring/decimal"

// MoneyScale é a quantidade de casas decimais de saldos e valores.
const MoneyScale int32 = 2

// MoneyIntegerDigits acompanha a coluna NUMERIC(15,2): 13 dígitos antes da vírgula.
const MoneyIntegerDigits = 13

// maxRepresentationDigits limita coeficiente e expoente antes de qualquer aritmética,
// para "1e-2000000" não custar uma divisão gigante.
const maxRepresentationDigits = 32

// MaxMoney é o maior saldo ou valor aceito (9999999999999.99).
var MaxMoney = decimal.New(1, MoneyIntegerDigits).Sub(decimal.New(1, -MoneyScale))

// integerDigits conta os dígitos da parte inteira sem reescalar o valor.
func integerDigits(d decimal.Decimal) int {
	return d.NumDigits() + int(d.Exponent())
}

// ValidateAmount aceita apenas valores positivos, com no máximo duas casas e até MaxMoney.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if integerDigits(amount) > MoneyIntegerDigits || amount.Exponent() < -maxRepresentationDigits || amount.NumDigits() > maxRepresentationDigits {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateOpeningBalance é como ValidateAmount, mas aceita zero.
func ValidateOpeningBalance(balance decimal.Decimal) error {
	if balance.IsZero() {
		return nil
	}
	return ValidateAmount(balance)
}

// FormatMoney devolve o valor sempre com duas casas ("150.00").
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyScale)
}
