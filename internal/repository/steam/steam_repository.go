package steam

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ballisticmarket/business/user"

	openid "github.com/yohcop/openid-go"
)

const (
	openidProvider = "https://steamcommunity.com/openid"
	summaryURL     = "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v0002/"
	claimedPrefix  = "https://steamcommunity.com/openid/id/"
)

type SteamConfig struct {
	APIKey    string
	ServerURL string
}

// SteamRepository handles the OpenID handshake and the player summary lookup
// against the Steam Web API.
type SteamRepository struct {
	steamConfig    SteamConfig
	nonceStore     openid.NonceStore
	discoveryCache openid.DiscoveryCache
}

func NewSteamRepository(cfg SteamConfig) *SteamRepository {
	return &SteamRepository{
		steamConfig:    cfg,
		nonceStore:     openid.NewSimpleNonceStore(),
		discoveryCache: openid.NewSimpleDiscoveryCache(),
	}
}

// LoginURL builds the provider redirect for the login button.
func (r *SteamRepository) LoginURL() (string, error) {
	callback := r.steamConfig.ServerURL + "/auth/steam/return"
	return openid.RedirectURL(openidProvider, callback, r.steamConfig.ServerURL)
}

// VerifyCallback validates the signed assertion on the return URL and
// extracts the steam id from the claimed identity.
func (r *SteamRepository) VerifyCallback(requestURL string) (string, error) {
	claimedID, err := openid.Verify(requestURL, r.discoveryCache, r.nonceStore)
	if err != nil {
		return "", fmt.Errorf("openid verification failed: %w", err)
	}

	if !strings.HasPrefix(claimedID, claimedPrefix) {
		return "", errors.New("unexpected openid claimed id")
	}

	return strings.TrimPrefix(claimedID, claimedPrefix), nil
}

type playerSummaryResponse struct {
	Response struct {
		Players []struct {
			SteamID     string `json:"steamid"`
			PersonaName string `json:"personaname"`
			AvatarFull  string `json:"avatarfull"`
			ProfileURL  string `json:"profileurl"`
		} `json:"players"`
	} `json:"response"`
}

// FetchIdentity pulls display name, avatar and profile URL for the steam id.
func (r *SteamRepository) FetchIdentity(steamID string) (user.SteamIdentity, error) {
	url := fmt.Sprintf("%s?key=%s&steamids=%s", summaryURL, r.steamConfig.APIKey, steamID)

	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Get(url)
	if err != nil {
		return user.SteamIdentity{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return user.SteamIdentity{}, fmt.Errorf("steam api returned status %v", res.StatusCode)
	}

	var summary playerSummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&summary); err != nil {
		return user.SteamIdentity{}, fmt.Errorf("failed to decode steam response: %w", err)
	}

	if len(summary.Response.Players) == 0 {
		return user.SteamIdentity{}, errors.New("steam player not found")
	}

	p := summary.Response.Players[0]
	return user.SteamIdentity{
		SteamID:     p.SteamID,
		DisplayName: p.PersonaName,
		Avatar:      p.AvatarFull,
		ProfileURL:  p.ProfileURL,
	}, nil
}
