package pcomb

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// NfaStateFn represents a state in a non-deterministic finite automaton
// over runes. Functions of type NfaStateFn try to match a single rune.
//
// The first argument is the Recognizer which carries this state function.
// A state function which accepts the rune must call rec.Consume(), otherwise
// the rune will not become part of the match.
//
// NfaStateFn – after matching a rune – must return another NfaStateFn,
// which will then in turn be called to process the next rune. The process
// of matching a string will stop as soon as a NfaStateFn returns nil.
// At the end of input, an active state function receives EOT.
type NfaStateFn func(*Recognizer, rune) NfaStateFn

// EOT is offered to state functions when the input is exhausted.
// It is never consumed.
const EOT rune = -1

// A Recognizer represents an automaton to recognize a prefix of a string.
// Its main functionality is performed by an embedded NfaStateFn. The first
// NfaStateFn to use is provided with the constructor.
//
// A Recognizer has accepted input if it is done and MatchLen > 0. Matches of
// length zero are never accepted; primitive parsers built on Recognizers
// therefore always make progress.
//
// It is not mandatory to use Recognizers for primitive parsers. The type is
// provided for easier implementation of rune-level matchers like Identifier.
type Recognizer struct {
	MatchLen int        // length of active match, in bytes
	runeLen  int        // byte length of the rune currently offered
	nextStep NfaStateFn // next step of the automaton
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call Recognize(),
// which will take a Recognizer from a pool.
func NewRecognizer(start NfaStateFn) *Recognizer {
	return &Recognizer{nextStep: start}
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Recognizer{}, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// newPooledRecognizer returns a Recognizer, pre-filled with a start state.
// Falls back to an unpooled Recognizer if the pool cannot serve us.
func newPooledRecognizer(start NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil || o == nil {
		return NewRecognizer(start)
	}
	rec := o.(*Recognizer)
	rec.nextStep = start
	return rec
}

// Clears the Recognizer and puts it back into the pool.
func (rec *Recognizer) releaseIntoPool() {
	rec.MatchLen = 0
	rec.runeLen = 0
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil recognizer]"
	}
	return fmt.Sprintf("[|match|=%d, done=%v]", rec.MatchLen, rec.Done())
}

// Done reports whether the Recognizer has stopped matching runes.
// If MatchLen > 0 it has been accepting a prefix of the input,
// otherwise it has aborted.
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// Consume adds the rune currently offered to the match.
func (rec *Recognizer) Consume() {
	rec.MatchLen += rec.runeLen
}

// step feeds a rune of byte length size to the automaton.
func (rec *Recognizer) step(r rune, size int) {
	if rec.nextStep == nil {
		return
	}
	rec.runeLen = size
	rec.nextStep = rec.nextStep(rec, r)
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept returns a state function which signals accept. The rune
// currently offered is not part of the match.
func DoAccept(rec *Recognizer) NfaStateFn {
	tracer().Debugf("ACCEPT with |match|=%d", rec.MatchLen)
	return nil
}

// Recognize runs an automaton, starting with state start, against input.
// It returns the byte length of the recognized prefix of input, which is
// 0 if the automaton did not accept.
//
// If the input is exhausted while the automaton is still active, it is
// offered EOT. An automaton which does not stop on EOT accepts the runes
// consumed so far.
func Recognize(start NfaStateFn, input string) int {
	rec := newPooledRecognizer(start)
	defer rec.releaseIntoPool()
	for i := 0; i < len(input) && !rec.Done(); {
		r, size := utf8.DecodeRuneInString(input[i:])
		rec.step(r, size)
		i += size
	}
	rec.step(EOT, 0)
	return rec.MatchLen
}

// Recognizing creates a parser from an automaton. On acceptance the parser's
// value is a copy of the recognized prefix of the input.
func Recognizing(start NfaStateFn) Parser[string] {
	return ParserFunc[string](func(input string) Result[string] {
		return recognizeText(start, input)
	})
}

func recognizeText(start NfaStateFn, input string) Result[string] {
	n := Recognize(start, input)
	if n == 0 {
		return Failure[string](input)
	}
	return Success(input[n:], ownedCopy(input[:n]))
}

// ownedCopy copies s, detaching it from the input it has been sliced from.
func ownedCopy(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s)
	return b.String()
}
