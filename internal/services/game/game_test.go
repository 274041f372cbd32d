package game_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/mafia/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/mafia/internal/common/uuid/mocks"
	"github.com/KirkDiggler/mafia/internal/models"
	resultRepo "github.com/KirkDiggler/mafia/internal/repositories/result"
	resultMocks "github.com/KirkDiggler/mafia/internal/repositories/result/mocks"
	settingsRepo "github.com/KirkDiggler/mafia/internal/repositories/settings"
	settingsMocks "github.com/KirkDiggler/mafia/internal/repositories/settings/mocks"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/game/mocks"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
)

type GameTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSettings    *settingsMocks.MockRepository
	mockResults     *resultMocks.MockRepository
	mockProvisioner *mocks.MockProvisioner
	mockDirectory   *mocks.MockDirectory
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	ctx             context.Context

	testTime     time.Time
	settings     *models.GuildSettings
	settingsErr  error
	channel      *fakeAudience
	mafiaChannel *fakeAudience
	players      []*fakeAudience

	mu              sync.Mutex
	results         []*models.GameResult
	deletedChannels []string
	revoked         []string

	game *game.Game
}

func (s *GameTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettings = settingsMocks.NewMockRepository(s.mockCtrl)
	s.mockResults = resultMocks.NewMockRepository(s.mockCtrl)
	s.mockProvisioner = mocks.NewMockProvisioner(s.mockCtrl)
	s.mockDirectory = mocks.NewMockDirectory(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.settings = models.DefaultGuildSettings("guild-1")
	s.settingsErr = nil
	s.channel = &fakeAudience{id: "channel-1", name: "mafia"}
	s.mafiaChannel = &fakeAudience{id: "mafia-channel-1", name: "the-mafia"}
	s.players = nil
	for i := 1; i <= 7; i++ {
		s.players = append(s.players, newFakePlayer(i))
	}
	s.results = nil
	s.deletedChannels = nil
	s.revoked = nil

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-uuid").AnyTimes()

	s.mockSettings.EXPECT().GetGuildSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *settingsRepo.GetGuildSettingsInput) (*models.GuildSettings, error) {
			if s.settingsErr != nil {
				return nil, s.settingsErr
			}
			return s.settings, nil
		}).AnyTimes()

	s.mockResults.EXPECT().SaveResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *resultRepo.SaveResultInput) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.results = append(s.results, input.Result)
			return nil
		}).AnyTimes()

	s.mockProvisioner.EXPECT().DeleteChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *game.DeleteChannelInput) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.deletedChannels = append(s.deletedChannels, input.ChannelID)
			return nil
		}).AnyTimes()

	s.mockProvisioner.EXPECT().RevokeMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *game.RevokeMemberInput) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.revoked = append(s.revoked, input.PlayerID)
			return nil
		}).AnyTimes()

	s.mockDirectory.EXPECT().BindSubChannel(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockDirectory.EXPECT().UnbindSubChannel(gomock.Any()).AnyTimes()

	s.game = s.newGame(&game.Config{})
}

func (s *GameTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GameTestSuite) newGame(cfg *game.Config) *game.Game {
	cfg.GuildID = "guild-1"
	cfg.Channel = s.channel
	cfg.SettingsRepo = s.mockSettings
	cfg.ResultRepo = s.mockResults
	cfg.Provisioner = s.mockProvisioner
	cfg.Directory = s.mockDirectory
	cfg.Narrator = messaging.New(&messaging.Config{Seed: 1})
	cfg.Shuffler = noShuffle{}
	cfg.Clock = s.mockClock
	cfg.UUIDGenerator = s.mockUUID

	g, err := game.New(cfg)
	s.Require().NoError(err)
	g.Launch(s.ctx)
	return g
}

func (s *GameTestSuite) expectNoOtherGames() {
	s.mockDirectory.EXPECT().ActiveGameFor(gomock.Any()).Return("", false).AnyTimes()
}

func (s *GameTestSuite) expectMafiaChannel() {
	s.mockProvisioner.EXPECT().CreateRestrictedChannel(gomock.Any(), gomock.Any()).
		Return(&game.CreateRestrictedChannelOutput{Channel: s.mafiaChannel}, nil)
}

func (s *GameTestSuite) say(player *fakeAudience, content string, mentions ...*fakeAudience) {
	s.Require().NoError(s.game.OnMessage(s.ctx, &game.OnMessageInput{
		Author:    player,
		ChannelID: s.channel.ID(),
		Content:   content,
		Mentions:  asPlayers(mentions),
	}))
}

func (s *GameTestSuite) dm(player *fakeAudience, content string) {
	s.Require().NoError(s.game.OnMessage(s.ctx, &game.OnMessageInput{
		Author:    player,
		ChannelID: "dm-" + player.ID(),
		IsDirect:  true,
		Content:   content,
	}))
}

func (s *GameTestSuite) inMafiaChannel(player *fakeAudience, content string) {
	s.Require().NoError(s.game.OnMessage(s.ctx, &game.OnMessageInput{
		Author:    player,
		ChannelID: s.mafiaChannel.ID(),
		Content:   content,
	}))
}

func (s *GameTestSuite) joinPlayers(n int) {
	s.expectNoOtherGames()
	for _, p := range s.players[:n] {
		s.say(p, "!join")
	}
	s.Require().Equal(n, s.game.PlayerCount())
}

// startGame joins n players and starts. With join order kept, player 1 is
// mafia and player 2 the doctor in a five player game. In a six player game
// players 1 and 2 are mafia, 3 the doctor and 4 the detective.
func (s *GameTestSuite) startGame(n int) {
	s.joinPlayers(n)
	s.expectMafiaChannel()
	s.say(s.players[0], "!start")
	s.Require().Equal(models.GameStateNight, s.game.State())
}

func (s *GameTestSuite) TestNewValidatesConfig() {
	_, err := game.New(nil)
	s.ErrorIs(err, game.ErrNilConfig)

	_, err = game.New(&game.Config{})
	s.ErrorIs(err, game.ErrNilChannel)

	_, err = game.New(&game.Config{
		Channel:       s.channel,
		SettingsRepo:  s.mockSettings,
		Provisioner:   s.mockProvisioner,
		Directory:     s.mockDirectory,
		Narrator:      messaging.New(nil),
		Shuffler:      noShuffle{},
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		MinPlayers:    6,
		MaxPlayers:    4,
	})
	s.ErrorIs(err, game.ErrInvalidPlayers)
}

func (s *GameTestSuite) TestLaunchPostsWelcome() {
	s.True(s.channel.contains("`!join`"))
	s.True(s.channel.contains("at least 5 players"))
	s.Equal(models.GameStateLobby, s.game.State())
	s.Equal(1, s.game.Round())
}

func (s *GameTestSuite) TestJoin() {
	s.expectNoOtherGames()

	s.say(s.players[0], "!join")

	s.True(s.game.HasPlayer("p1"))
	s.True(s.channel.contains("<@p1> joined the game (1 players of 5 needed)"))
	s.True(s.players[0].contains("Welcome to Upper Lowerstoft"))
}

func (s *GameTestSuite) TestJoinReportsMaximumOnceStartable() {
	s.joinPlayers(5)

	s.True(s.channel.contains("<@p5> joined the game (5 players of maximum 15)"))
}

func (s *GameTestSuite) TestJoinTwice() {
	s.expectNoOtherGames()

	s.say(s.players[0], "!join")
	s.say(s.players[0], "!join")

	s.Equal(1, s.game.PlayerCount())
	s.True(s.channel.contains("You're already in the game!"))
}

func (s *GameTestSuite) TestJoinWhileInAnotherGame() {
	s.mockDirectory.EXPECT().ActiveGameFor("p1").Return("channel-2", true)

	s.say(s.players[0], "!join")

	s.False(s.game.HasPlayer("p1"))
	s.True(s.channel.contains("You're already in a game elsewhere!"))
}

func (s *GameTestSuite) TestJoinWithDirectMessagesBlocked() {
	s.expectNoOtherGames()
	s.players[0].err = game.ErrDirectMessagesBlocked

	s.say(s.players[0], "!join")

	s.False(s.game.HasPlayer("p1"))
	s.True(s.channel.contains("<@p1> you have your DMs turned off"))
}

func (s *GameTestSuite) TestJoinWhenFull() {
	s.channel = &fakeAudience{id: "channel-1"}
	s.game = s.newGame(&game.Config{MinPlayers: 3, MaxPlayers: 3})
	s.expectNoOtherGames()

	for _, p := range s.players[:4] {
		s.say(p, "!join")
	}

	s.Equal(3, s.game.PlayerCount())
	s.False(s.game.HasPlayer("p4"))
	s.True(s.channel.contains("<@p4> the game is full (3 players)"))
}

func (s *GameTestSuite) TestJoinOutsideGameChannelIgnored() {
	s.dm(s.players[0], "!join")

	s.Equal(0, s.game.PlayerCount())
}

func (s *GameTestSuite) TestLeaveInLobby() {
	s.joinPlayers(2)

	s.say(s.players[1], "!leave")

	s.False(s.game.HasPlayer("p2"))
	s.True(s.channel.contains("<@p2> left the game"))
	s.Equal(models.GameStateLobby, s.game.State())
}

func (s *GameTestSuite) TestStartWithoutEnoughPlayers() {
	s.joinPlayers(4)

	s.say(s.players[0], "!start")

	s.Equal(models.GameStateLobby, s.game.State())
	s.True(s.channel.contains("There aren't enough players (4 of 5 needed)"))
}

func (s *GameTestSuite) TestStartWithDirectMessagesBlocked() {
	s.joinPlayers(5)
	s.players[2].err = game.ErrDirectMessagesBlocked
	s.expectMafiaChannel()

	s.say(s.players[0], "!start")

	s.Equal(models.GameStateNight, s.game.State())
	s.True(s.channel.contains("<@p3> you have your DMs turned off"))
	s.Equal(1, s.channel.countContaining("<@p3> you have your DMs turned off"))
}

func (s *GameTestSuite) TestStartByNonParticipantIgnored() {
	s.joinPlayers(5)

	s.say(s.players[6], "!start")

	s.Equal(models.GameStateLobby, s.game.State())
}

func (s *GameTestSuite) TestStartFivePlayers() {
	s.joinPlayers(5)
	s.mockProvisioner.EXPECT().CreateRestrictedChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *game.CreateRestrictedChannelInput) (*game.CreateRestrictedChannelOutput, error) {
			s.Equal("guild-1", input.GuildID)
			s.Equal("channel-1", input.ParentChannelID)
			s.Equal(game.MafiaChannelName, input.Name)
			s.Require().Len(input.Members, 1)
			s.Equal("p1", input.Members[0].ID())
			return &game.CreateRestrictedChannelOutput{Channel: s.mafiaChannel}, nil
		})

	s.say(s.players[0], "!start")

	s.Equal(models.GameStateNight, s.game.State())
	s.Equal(1, s.game.Round())
	s.True(s.mafiaChannel.contains("<@p1> - you are the mafia"))
	s.True(s.mafiaChannel.contains("to mark for death"))
	s.True(s.mafiaChannel.contains("1 - Player 1"))
	s.True(s.players[0].contains("You're in the mafia"))
	s.True(s.players[1].contains("You're the doctor"))
	s.True(s.players[1].contains("the player you wish to save"))
	for _, p := range s.players[2:5] {
		s.True(p.contains("You're a villager"), p.ID())
	}
	s.True(s.channel.contains("Round 1"))
}

func (s *GameTestSuite) TestStartSixPlayersHasDetective() {
	s.startGame(6)

	s.True(s.players[2].contains("You're the doctor"))
	s.True(s.players[3].contains("You're the detective"))
	s.True(s.players[3].contains("the player you wish to investigate"))
	s.True(s.mafiaChannel.contains("<@p1> <@p2> - you are the mafia"))
}

func (s *GameTestSuite) TestStartWithoutPermission() {
	s.joinPlayers(5)
	s.mockProvisioner.EXPECT().CreateRestrictedChannel(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("create channel: %w", game.ErrPermissionDenied))

	s.say(s.players[0], "!start")

	s.Equal(models.GameStateEnded, s.game.State())
	s.True(s.channel.contains("I don't have permission to create text channels"))
	s.True(s.channel.contains("The game has had to end for some reason"))
	s.Require().Len(s.results, 1)
	s.Equal(models.WinNone, s.results[0].Winner)
	s.Empty(s.deletedChannels)
}

func (s *GameTestSuite) TestChooseByPlainVillagerIgnored() {
	s.startGame(5)
	before := s.players[2].count()

	s.dm(s.players[2], "!choose 1")
	s.say(s.players[2], "!choose 1")

	s.Equal(before, s.players[2].count())
	s.Equal(models.GameStateNight, s.game.State())

	s.say(s.players[0], "!why")
	s.True(s.channel.contains("the Mafia, the doctor"))
}

func (s *GameTestSuite) TestMafiaChooseOutsideMafiaChannelIgnored() {
	s.startGame(5)

	s.say(s.players[0], "!choose 3")
	s.dm(s.players[0], "!choose 4")

	s.Equal(models.GameStateNight, s.game.State())
	s.False(s.mafiaChannel.contains("choice submitted"))
}

func (s *GameTestSuite) TestInvalidOrdinalRejected() {
	s.startGame(5)

	s.inMafiaChannel(s.players[0], "!choose 9")
	s.inMafiaChannel(s.players[0], "!choose abc")
	s.inMafiaChannel(s.players[0], "!choose")
	s.dm(s.players[1], "!choose 0")

	s.Equal(3, s.mafiaChannel.countContaining("<@p1> - that isn't a valid choice"))
	s.True(s.players[1].contains("That isn't a valid choice!"))

	s.inMafiaChannel(s.players[0], "!choose 3")
	s.True(s.mafiaChannel.contains("Player 3 has been marked for death"))
}

func (s *GameTestSuite) TestMafiaCannotChooseTwice() {
	s.startGame(6)

	s.inMafiaChannel(s.players[0], "!choose 5")
	s.inMafiaChannel(s.players[0], "!choose 6")

	s.True(s.mafiaChannel.contains("<@p1> - you've already chosen"))
}

func (s *GameTestSuite) TestDoctorSavesTarget() {
	s.startGame(5)

	s.inMafiaChannel(s.players[0], "!choose 3")
	s.dm(s.players[1], "!choose 3")

	s.Equal(models.GameStateDay, s.game.State())
	s.Equal(5, s.game.PlayerCount())
	s.True(s.channel.contains("The Mafia chose to kill <@p3>"))
	s.True(s.channel.contains("The doctor managed to save them in time!"))
	s.True(s.channel.contains("`!accuse`"))
}

func (s *GameTestSuite) TestNightKill() {
	s.startGame(5)

	s.inMafiaChannel(s.players[0], "!choose 3")
	s.Equal(models.GameStateNight, s.game.State())
	s.dm(s.players[1], "!choose 4")

	s.Equal(models.GameStateDay, s.game.State())
	s.False(s.game.HasPlayer("p3"))
	s.Equal(4, s.game.PlayerCount())
	s.True(s.channel.contains("The doctor was unable to save them"))
	s.True(s.channel.contains("Player 3 has been killed!"))
	s.True(s.channel.contains("They were a **villager**"))
}

func (s *GameTestSuite) TestDoctorCannotSaveSamePlayerTwice() {
	s.startGame(5)

	// round 1: doctor saves player 3, player 4 dies
	s.inMafiaChannel(s.players[0], "!choose 4")
	s.dm(s.players[1], "!choose 3")
	s.Require().False(s.game.HasPlayer("p4"))

	for _, p := range []*fakeAudience{s.players[0], s.players[1], s.players[2], s.players[4]} {
		s.say(p, "!skip")
	}
	s.Require().Equal(2, s.game.Round())
	s.Require().Equal(models.GameStateNight, s.game.State())

	// roster is now p1, p2, p3, p5
	s.dm(s.players[1], "!choose 3")
	s.True(s.players[1].contains("You can't save the same person two nights running!"))

	s.dm(s.players[1], "!choose 2")
	s.inMafiaChannel(s.players[0], "!choose 3")

	s.False(s.game.HasPlayer("p3"))
	s.True(s.channel.contains("Player 3 has been killed!"))
	s.Equal(models.GameStateDay, s.game.State())
}

func (s *GameTestSuite) TestMafiaDisagreement() {
	s.startGame(6)

	s.inMafiaChannel(s.players[0], "!choose 5")
	s.inMafiaChannel(s.players[1], "!choose 6")
	s.True(s.mafiaChannel.contains("You couldn't come to an agreement"))

	s.dm(s.players[2], "!choose 1")
	s.dm(s.players[3], "!choose 3")

	s.Equal(models.GameStateDay, s.game.State())
	s.Equal(6, s.game.PlayerCount())
	s.True(s.channel.contains("The Mafia didn't choose anybody to kill this time around"))
	s.True(s.channel.contains("The detective didn't find a member of the mafia"))
	s.True(s.players[3].contains("Incorrect - Player 3 is not in the mafia!"))
}

func (s *GameTestSuite) TestMafiaWinsWhenCountsEqual() {
	s.settings.WinCommand = "!givexp"
	s.startGame(6)

	s.inMafiaChannel(s.players[0], "!choose 5")
	s.inMafiaChannel(s.players[1], "!choose 5")
	s.dm(s.players[2], "!choose 6")
	s.dm(s.players[3], "!choose 1")

	s.Require().Equal(models.GameStateDay, s.game.State())
	s.True(s.players[3].contains("Correct - Player 1 is in the mafia!"))
	s.True(s.channel.contains("The detective found a member of the mafia"))
	s.False(s.game.HasPlayer("p5"))

	// two mafia against three villagers, purging one more ends it
	s.say(s.players[0], "!accuse", s.players[5])
	s.say(s.players[1], "!accuse", s.players[5])
	s.say(s.players[3], "!skip")
	s.say(s.players[5], "!skip")
	s.Equal(models.GameStateDay, s.game.State())
	s.say(s.players[2], "!accuse", s.players[5])

	s.Equal(models.GameStateEnded, s.game.State())
	s.True(s.channel.contains("The village has agreed that Player 6 should be purged"))
	s.True(s.channel.contains("Player 6 has been purged!"))
	s.True(s.channel.contains("The Mafia (<@p1> <@p2>) have won!"))
	s.True(s.channel.contains("!givexp <@p1> <@p2>"))
	s.Equal([]string{"mafia-channel-1"}, s.deletedChannels)

	s.Require().Len(s.results, 1)
	result := s.results[0]
	s.Equal(models.WinMafia, result.Winner)
	s.Equal(1, result.Rounds)
	s.Equal([]string{"Player 1", "Player 2"}, result.Mafia)
	s.Equal([]string{"Player 3", "Player 4", "Player 5", "Player 6"}, result.Villagers)
	s.Equal(s.testTime, result.EndedAt)
}

func (s *GameTestSuite) TestVillagersWinByPurge() {
	s.startGame(5)
	s.inMafiaChannel(s.players[0], "!choose 3")
	s.dm(s.players[1], "!choose 3")
	s.Require().Equal(models.GameStateDay, s.game.State())

	s.say(s.players[0], "!accuse", s.players[1])
	s.say(s.players[1], "!accuse", s.players[0])
	s.say(s.players[2], "!accuse", s.players[0])
	s.say(s.players[3], "!accuse", s.players[0])
	s.True(s.channel.contains("<@p4> accused Player 1 - 1 left to decide"))
	s.say(s.players[4], "!skip")

	s.Equal(models.GameStateEnded, s.game.State())
	s.True(s.channel.contains("They were in the **mafia**"))
	s.True(s.channel.contains("The villagers (<@p2> <@p3> <@p4> <@p5>) have won!"))
	s.Equal([]string{"p1"}, s.revoked)
	s.Require().Len(s.results, 1)
	s.Equal(models.WinVillagers, s.results[0].Winner)
}

func (s *GameTestSuite) TestNoPurgeWithoutQuorum() {
	s.startGame(5)
	s.inMafiaChannel(s.players[0], "!choose 3")
	s.dm(s.players[1], "!choose 3")

	s.say(s.players[0], "!accuse", s.players[1])
	s.say(s.players[1], "!accuse", s.players[0])
	s.say(s.players[2], "!skip")
	s.say(s.players[3], "!skip")
	s.say(s.players[4], "!skip")

	s.True(s.channel.contains("nobody is purged today"))
	s.Equal(models.GameStateNight, s.game.State())
	s.Equal(2, s.game.Round())
	s.Equal(5, s.game.PlayerCount())
}

func (s *GameTestSuite) TestAccuseValidation() {
	s.startGame(5)
	s.inMafiaChannel(s.players[0], "!choose 3")
	s.dm(s.players[1], "!choose 3")

	s.say(s.players[0], "!accuse")
	s.True(s.channel.contains("<@p1> that wasn't a valid choice"))

	s.say(s.players[0], "!accuse", s.players[6])
	s.True(s.channel.contains("<@p7> isn't in the game!"))

	s.say(s.players[6], "!skip")
	s.False(s.channel.contains("<@p7> skipped"))
}

func (s *GameTestSuite) TestLeaveAtNightIsDeath() {
	s.startGame(5)
	doctorMessages := s.players[1].count()

	s.say(s.players[2], "!leave")

	s.Equal(models.GameStateNight, s.game.State())
	s.Equal(4, s.game.PlayerCount())
	s.True(s.channel.contains("Player 3 has fled the village!"))
	s.True(s.channel.contains("They were a **villager**"))
	s.Greater(s.players[1].count(), doctorMessages)

	// roster is now p1, p2, p4, p5
	s.inMafiaChannel(s.players[0], "!choose 3")
	s.True(s.mafiaChannel.contains("Player 4 has been marked for death"))
}

func (s *GameTestSuite) TestLeaveAtNightDropsVotesForDeparted() {
	s.startGame(6)

	s.inMafiaChannel(s.players[0], "!choose 5")
	s.say(s.players[4], "!leave")

	// player 1 may vote again now their target has gone
	s.inMafiaChannel(s.players[0], "!choose 5")
	s.inMafiaChannel(s.players[1], "!choose 5")

	s.True(s.mafiaChannel.contains("Player 6 has been marked for death"))
	s.False(s.mafiaChannel.contains("you've already chosen"))
}

func (s *GameTestSuite) TestLeaveByMarkedPlayerSparesTheNight() {
	s.startGame(6)

	s.inMafiaChannel(s.players[0], "!choose 5")
	s.inMafiaChannel(s.players[1], "!choose 5")
	s.Require().True(s.mafiaChannel.contains("Player 5 has been marked for death"))

	s.say(s.players[4], "!leave")
	s.True(s.mafiaChannel.contains("Player 5 fled the village before you could strike, nobody will be killed tonight"))

	// roster is now p1, p2, p3, p4, p6
	s.dm(s.players[2], "!choose 1")
	s.dm(s.players[3], "!choose 3")

	s.Equal(models.GameStateDay, s.game.State())
	s.Equal(5, s.game.PlayerCount())
	s.True(s.channel.contains("Player 5 fled the village before the Mafia could strike"))
	s.False(s.channel.contains("The Mafia didn't choose anybody"))
}

func (s *GameTestSuite) TestLeaveByLastMafiaEndsGame() {
	s.startGame(5)

	s.say(s.players[0], "!leave")

	s.Equal(models.GameStateEnded, s.game.State())
	s.True(s.channel.contains("They were in the **mafia**"))
	s.True(s.channel.contains("The villagers (<@p2> <@p3> <@p4> <@p5>) have won!"))
}

func (s *GameTestSuite) TestLeaveByDoctorCompletesNight() {
	s.startGame(5)

	s.inMafiaChannel(s.players[0], "!choose 3")
	s.Equal(models.GameStateNight, s.game.State())

	s.say(s.players[1], "!leave")

	s.Equal(models.GameStateDay, s.game.State())
	s.True(s.channel.contains("They were the **doctor**"))
	s.True(s.channel.contains("Player 3 has been killed!"))
}

func (s *GameTestSuite) TestLeaveAtDayRechecksQuorum() {
	s.startGame(5)
	s.inMafiaChannel(s.players[0], "!choose 3")
	s.dm(s.players[1], "!choose 3")

	for _, p := range s.players[:4] {
		s.say(p, "!skip")
	}
	s.Equal(models.GameStateDay, s.game.State())

	s.say(s.players[4], "!leave")

	s.Equal(models.GameStateNight, s.game.State())
	s.Equal(2, s.game.Round())
	s.Equal(4, s.game.PlayerCount())
}

func (s *GameTestSuite) TestRestart() {
	s.startGame(5)
	s.say(s.players[0], "!leave")
	s.Require().Equal(models.GameStateEnded, s.game.State())

	s.say(s.players[1], "!restart")

	s.Equal(models.GameStateLobby, s.game.State())
	s.Equal(1, s.game.Round())
	s.Equal(0, s.game.PlayerCount())
	s.Equal("channel-1", s.game.ChannelID())
	s.Equal(2, s.channel.countContaining("Welcome to the village of Upper Lowerstoft"))

	s.say(s.players[1], "!join")
	s.True(s.game.HasPlayer("p2"))
}

func (s *GameTestSuite) TestRestartOnlyWhenEnded() {
	s.joinPlayers(2)

	s.say(s.players[0], "!restart")

	s.Equal(2, s.game.PlayerCount())
}

func (s *GameTestSuite) TestWhyAndWho() {
	s.say(s.players[0], "!who")
	s.True(s.channel.contains("Nobody is in the game yet"))

	s.say(s.players[0], "!why")
	s.True(s.channel.contains("I'm waiting for more players to join, use `!join`"))

	s.joinPlayers(1)
	s.say(s.players[0], "!who")
	s.True(s.channel.contains("<@p1> is in the game"))
}

func (s *GameTestSuite) TestWhyDuringDay() {
	s.startGame(5)
	s.inMafiaChannel(s.players[0], "!choose 3")
	s.dm(s.players[1], "!choose 3")
	s.say(s.players[0], "!skip")
	s.say(s.players[1], "!skip")
	s.say(s.players[2], "!skip")
	s.say(s.players[3], "!skip")

	s.say(s.players[0], "!why")

	s.True(s.channel.contains("1 player left to make a decision (<@p5>)"))
}

func (s *GameTestSuite) TestCustomPrefix() {
	s.settings.Prefix = "?"
	s.expectNoOtherGames()

	s.say(s.players[0], "!join")
	s.False(s.game.HasPlayer("p1"))

	s.say(s.players[0], "?JOIN")
	s.True(s.game.HasPlayer("p1"))
}

func (s *GameTestSuite) TestSettingsFailureFallsBackToDefaults() {
	s.settingsErr = errors.New("redis unavailable")
	s.expectNoOtherGames()

	s.say(s.players[0], "!join")

	s.True(s.game.HasPlayer("p1"))
}

func (s *GameTestSuite) TestDestroy() {
	s.startGame(5)

	s.game.Destroy(s.ctx)

	s.Equal([]string{"mafia-channel-1"}, s.deletedChannels)
	s.False(s.game.IsActive())

	s.inMafiaChannel(s.players[0], "!choose 3")
	s.False(s.mafiaChannel.contains("choice submitted"))
	s.Empty(s.results)
}

func (s *GameTestSuite) TestOnMessageRequiresAuthor() {
	s.ErrorIs(s.game.OnMessage(s.ctx, &game.OnMessageInput{Content: "!join"}), game.ErrNilInput)
	s.ErrorIs(s.game.OnMessage(s.ctx, nil), game.ErrNilInput)
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}
