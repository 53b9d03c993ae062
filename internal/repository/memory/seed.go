package memory

import (
	"encoding/json"
	"time"

	"creon-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// seed loads the demo profile. Called from WithSampleData before the store
// is shared, so it does not lock.
func (s *Store) seed() {
	wallet := domain.WalletMetaMask
	alex, err := s.insertUser(domain.NewUser{
		Username:      "alexrivera",
		Email:         "alex@creon.example",
		Name:          "Alex Rivera",
		Title:         strPtr("Digital Artist & Creator"),
		WalletAddress: strPtr("0x1234567890abcdef1234567890abcdef12345678"),
		WalletType:    &wallet,
		IsVerified:    true,
		Bio:           strPtr("Passionate digital creator building the future of Web3 art"),
	})
	if err != nil {
		panic(err)
	}

	st := s.stats[alex.ID]
	st.CreationCount = 127
	st.TotalEarnings = domain.MustAmount("2340.00")
	st.TipCount = 89
	st.FollowerCount = 1250

	nfts := []struct{ token, name, desc, image string }{
		{"1", "Abstract Digital Art #1", "Colorful abstract digital artwork", "https://images.unsplash.com/photo-1634986666676-ec8fd927c23d?w=200&h=200"},
		{"2", "Geometric Pattern #1", "Geometric pattern NFT artwork", "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=200&h=200"},
		{"3", "Digital Landscape #1", "Digital landscape NFT", "https://images.unsplash.com/photo-1635776062127-d379bfcba9f8?w=200&h=200"},
	}
	for _, n := range nfts {
		id := s.nextID("nfts")
		s.nfts[id] = &domain.NFT{
			ID:              id,
			UserID:          alex.ID,
			TokenID:         n.token,
			ContractAddress: "0xabcd1234",
			Name:            n.name,
			Description:     strPtr(n.desc),
			ImageURL:        n.image,
			Metadata:        json.RawMessage(`{}`),
			Blockchain:      domain.BlockchainEthereum,
			CreatedAt:       s.now(),
		}
	}

	grants := []domain.Grant{
		{
			Title:            "Superteam Creator Fund",
			Description:      "Up to $5,000 for innovative Web3 creators building on Solana",
			Amount:           domain.MustAmount("5000.00"),
			Currency:         "USD",
			Organization:     "Superteam",
			Deadline:         time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Status:           domain.GrantOpen,
			Requirements:     strPtr("Must be building on Solana ecosystem"),
			ApplicationCount: 127,
		},
		{
			Title:            "Base Creator Grant",
			Description:      "$2,500 for creators building tools and content on Base",
			Amount:           domain.MustAmount("2500.00"),
			Currency:         "USD",
			Organization:     "Base",
			Deadline:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:           domain.GrantFeatured,
			Requirements:     strPtr("Must be building on Base network"),
			ApplicationCount: 89,
		},
	}
	for i := range grants {
		g := grants[i]
		g.ID = s.nextID("grants")
		g.CreatedAt = s.now()
		s.grants[g.ID] = &g
	}

	content := []domain.TokenGatedContent{
		{
			Title:                   "Pro Designer Pack",
			Description:             "50+ premium templates",
			ImageURL:                "https://images.unsplash.com/photo-1558655146-d09347e92766?w=100&h=100",
			RequiredTokenType:       domain.TokenTypeToken,
			RequiredTokenAmount:     intPtr(5),
			RequiredContractAddress: strPtr("0xtoken123"),
			RequiredTokenSymbol:     strPtr("CREATOR"),
			ContentType:             domain.ContentTemplate,
			IsActive:                true,
		},
		{
			Title:                   "Elite Collection",
			Description:             "Exclusive designs",
			ImageURL:                "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=100&h=100",
			RequiredTokenType:       domain.TokenTypeNFT,
			RequiredTokenAmount:     intPtr(1),
			RequiredContractAddress: strPtr("0xvip123"),
			RequiredTokenSymbol:     strPtr("VIP"),
			ContentType:             domain.ContentTemplate,
			IsActive:                true,
		},
	}
	for i := range content {
		c := content[i]
		c.ID = s.nextID("token_gated_content")
		c.CreatedAt = s.now()
		s.content[c.ID] = &c
	}
}
