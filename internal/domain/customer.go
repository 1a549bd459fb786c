package domain

import "strings"

type Customer struct {
	ID             int64
	FirstName      string
	LastName       *string
	Document       string
	Phone          *string
	Email          *string
	Address        *string
	NeighborhoodID *int64
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.Document) == "" {
		return ErrInvalidCustomer
	}
	return nil
}
