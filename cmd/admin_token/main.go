// Package main prints the bcrypt hash of an admin token, to be set as GYMCOACH_ADMIN_TOKEN_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/2beens/gymcoach/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	token := flag.String("token", "", "admin token to hash (read from stdin if empty)")
	flag.Parse()

	if *token == "" {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read token from stdin: %s", err)
		}
		*token = strings.TrimSpace(line)
	}
	if *token == "" {
		log.Fatalln("empty admin token")
	}

	hash, err := pkg.HashPassword(*token)
	if err != nil {
		log.Fatalf("hash admin token: %s", err)
	}
	fmt.Println(hash)
}
