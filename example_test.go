package swt_test

import (
	"fmt"
	"log"

	"github.com/tokenwire/swt"
)

func Example() {
	secret := []byte("secret")

	token, err := swt.New(swt.Claims{ID: "this one", ExpiresAt: 13}, secret)
	if err != nil {
		log.Fatal(err)
	}

	wire, err := token.Encode()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(wire)
	// Output: eyJqdGkiOiJ0aGlzIG9uZSIsImV4cCI6MTN9.Ir9W3KCkyGNmsPFURs4Sj7aQSkuvcqpQ7kTk4F6wCyU
}

func ExampleParse() {
	wire := "eyJqdGkiOiJ0aGlzIG9uZSIsImV4cCI6MTN9.Ir9W3KCkyGNmsPFURs4Sj7aQSkuvcqpQ7kTk4F6wCyU"

	// Parsing does not verify; the token is untrusted until IsValid.
	token, err := swt.Parse[swt.Claims](wire)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token.Payload().ID)
	fmt.Println(token.IsValid([]byte("secret")))
	fmt.Println(token.IsValid([]byte("other secret")))
	// Output:
	// this one
	// true
	// false
}

func ExampleNew_customPayload() {
	type session struct {
		User  string   `json:"user"`
		Roles []string `json:"roles"`
	}

	secret := []byte("secret")

	token, err := swt.New(session{User: "alice", Roles: []string{"admin"}}, secret)
	if err != nil {
		log.Fatal(err)
	}

	wire, err := token.Encode()
	if err != nil {
		log.Fatal(err)
	}

	parsed, err := swt.Parse[session](wire)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(parsed.Payload().User, parsed.IsValid(secret))
	// Output: alice true
}
