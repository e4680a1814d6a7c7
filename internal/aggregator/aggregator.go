package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonmartinstorm/profilsnusern/internal/analysis"
	"github.com/jonmartinstorm/profilsnusern/internal/fetcher"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

// Aggregator eier tilstanden for profilen som vises. Hver kjøring får en ny
// generasjon og kansellerer den forrige.
type Aggregator struct {
	source fetcher.ProfileSource

	mu        sync.Mutex
	machine   Machine
	cancel    context.CancelFunc
	cancelGen uint64
	subs      map[uint64]chan models.State
	nextSub   uint64

	wg sync.WaitGroup
}

func New(source fetcher.ProfileSource) *Aggregator {
	return &Aggregator{
		source:  source,
		machine: Machine{State: models.Loading("")},
		subs:    map[uint64]chan models.State{},
	}
}

// State returnerer gjeldende tilstand.
func (a *Aggregator) State() models.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.State
}

// Start setter tilstanden til loading for username med en gang og henter
// dataene i bakgrunnen.
func (a *Aggregator) Start(ctx context.Context, username string) {
	runCtx, gen := a.begin(ctx, username)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.execute(runCtx, gen, username)
	}()
}

// Run henter profil og repos for username og returnerer tilstanden etter
// kjøringen. Blir kjøringen erstattet av en nyere, endrer den ikke tilstanden.
func (a *Aggregator) Run(ctx context.Context, username string) models.State {
	runCtx, gen := a.begin(ctx, username)
	return a.execute(runCtx, gen, username)
}

func (a *Aggregator) execute(runCtx context.Context, gen uint64, username string) models.State {
	start := time.Now()
	defer a.finish(gen)

	slog.Info("Starter aggregering", "username", username, "generasjon", gen)

	if username == "" {
		a.dispatch(Event{Kind: EventFailed, Generation: gen, Username: username, Message: fetcher.ErrUserNotFound.Error()})
		return a.State()
	}

	snap, err := a.collect(runCtx, username)
	if runCtx.Err() != nil {
		slog.Info("Aggregering avbrutt", "username", username, "generasjon", gen, "error", runCtx.Err())
		return a.State()
	}

	if err != nil {
		slog.Warn("Aggregering feilet", "username", username, "generasjon", gen, "error", err)
		a.dispatch(Event{Kind: EventFailed, Generation: gen, Username: username, Message: ErrorMessage(err)})
		return a.State()
	}

	a.dispatch(Event{Kind: EventSucceeded, Generation: gen, Username: username, Snapshot: snap})
	slog.Info("Aggregering ferdig",
		"username", username,
		"generasjon", gen,
		"repos", len(snap.Repos),
		"utvalgte", len(snap.Featured),
		"teknologier", len(snap.Technologies),
		"varighet", time.Since(start).String())
	return a.State()
}

func (a *Aggregator) begin(ctx context.Context, username string) (context.Context, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	gen := a.machine.Generation + 1
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.cancelGen = gen

	a.apply(Event{Kind: EventStarted, Generation: gen, Username: username})
	return runCtx, gen
}

func (a *Aggregator) finish(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil && a.cancelGen == gen {
		a.cancel()
		a.cancel = nil
	}
}

// collect kjører de to kallene samtidig og venter på begge. Feil på profilen
// vinner over feil på repos, slik at meldingen ikke avhenger av hvem som
// svarte først.
func (a *Aggregator) collect(ctx context.Context, username string) (models.Snapshot, error) {
	var (
		profile    models.Profile
		repos      []models.Repository
		profileErr error
		reposErr   error
	)

	var g errgroup.Group
	g.Go(func() error {
		profile, profileErr = a.source.FetchProfile(ctx, username)
		return profileErr
	})
	g.Go(func() error {
		repos, reposErr = a.source.FetchRepos(ctx, username)
		return reposErr
	})
	_ = g.Wait()

	switch {
	case profileErr != nil:
		return models.Snapshot{}, profileErr
	case reposErr != nil:
		return models.Snapshot{}, reposErr
	}

	return analysis.BuildSnapshot(username, profile, repos), nil
}

func (a *Aggregator) dispatch(ev Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apply(ev)
}

// apply krever at mu er tatt.
func (a *Aggregator) apply(ev Event) {
	next := Reduce(a.machine, ev)
	if next == a.machine {
		slog.Debug("Forkaster utdatert hendelse", "generasjon", ev.Generation, "gjeldende", a.machine.Generation)
		return
	}
	a.machine = next
	for _, ch := range a.subs {
		publish(ch, next.State)
	}
}

// publish lar en treg abonnent kun se siste tilstand.
func publish(ch chan models.State, s models.State) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- s
}

// Subscribe gir gjeldende tilstand med en gang og deretter hver endring.
// Kall den returnerte funksjonen for å avslutte abonnementet.
func (a *Aggregator) Subscribe() (<-chan models.State, func()) {
	ch := make(chan models.State, 1)

	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = ch
	ch <- a.machine.State
	a.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			if c, ok := a.subs[id]; ok {
				delete(a.subs, id)
				close(c)
			}
		})
	}
}

// Close avbryter pågående kjøring, venter på bakgrunnskjøringer og lukker
// alle abonnementer.
func (a *Aggregator) Close() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.mu.Unlock()

	a.wg.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()
	for id, ch := range a.subs {
		delete(a.subs, id)
		close(ch)
	}
}

// ErrorMessage gjør en feil om til teksten som vises i feiltilstanden.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fetcher.ErrUserNotFound):
		return fetcher.ErrUserNotFound.Error()
	case errors.Is(err, fetcher.ErrRepositoryFetchFailed):
		return fetcher.ErrRepositoryFetchFailed.Error()
	default:
		return err.Error()
	}
}
