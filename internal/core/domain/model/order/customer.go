package order

import "strings"

// Customer is the contact block printed on invoices and labels.
type Customer struct {
	name    string
	email   string
	mobile  string
	address string
}

func NewCustomer(name, email, mobile, address string) Customer {
	return Customer{
		name:    strings.TrimSpace(name),
		email:   strings.TrimSpace(email),
		mobile:  strings.TrimSpace(mobile),
		address: strings.TrimSpace(address),
	}
}

func (c Customer) Name() string { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Mobile() string { return c.mobile }
func (c Customer) Address() string { return c.address }
