package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/angoleague/algtool/internal/league"
)

// AdviceFallback is shown when the recommendation call fails.
const AdviceFallback = "Não conseguimos carregar as recomendações agora, mas explore o feed local!"

// MatchmakingAdvice asks for three short recommendations of teams or
// actions for the player, in Angolan Portuguese. On any failure it logs and
// returns AdviceFallback.
func (c *Client) MatchmakingAdvice(ctx context.Context, profile league.UserProfile, localTeams []league.Team) string {
	profileJSON, _ := json.Marshal(profile)
	teamsJSON, _ := json.Marshal(localTeams)
	prompt := fmt.Sprintf(`Analise este perfil de jogador: %s.
E estas equipas disponíveis: %s.
Dê 3 recomendações curtas de equipas ou ações para ele começar a jogar, em Português de Angola.`, profileJSON, teamsJSON)

	text, err := c.GenerateText(ctx, prompt, &generationConfig{Temperature: 0.7, TopP: 0.95})
	if err != nil {
		log.Printf("MatchmakingAdvice: %v", err)
		return AdviceFallback
	}
	return text
}

// LocalFeedPost generates a short fictional, motivational street-football
// story for a locality. On any failure it returns a canned post referencing
// the locality.
func (c *Client) LocalFeedPost(ctx context.Context, locality string) string {
	prompt := fmt.Sprintf(`Gere uma notícia fictícia e motivadora sobre o futebol de rua em %s, Angola.
Foque na união do bairro e novos talentos. Máximo 150 caracteres.`, locality)

	text, err := c.GenerateText(ctx, prompt, nil)
	if err != nil {
		return fmt.Sprintf("O futebol de rua em %s está a ferver! Organize o seu jogo hoje.", locality)
	}
	return text
}
