// devtoken mints a development JWT compatible with the external auth
// provider's tokens, for exercising the saved-itinerary routes locally.
// Requires JWT_SECRET in the environment.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"voyago/pkg/utils"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid); random when omitted")
	roleFlag := flag.String("role", "user", "role claim")
	ttlFlag := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("Invalid user id: %v", err)
		}
		userID = parsed
	}

	token, err := utils.CreateToken(userID, *roleFlag, *ttlFlag)
	if err != nil {
		log.Fatalf("Could not create token: %v", err)
	}

	fmt.Printf("user_id: %s\n", userID)
	fmt.Println(token)
}
