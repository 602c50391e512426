package shotgun_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/its-laika/shotgun"
)

func ExampleNew() {
	tx, rx := shotgun.New[int]()

	// Before the send, the channel reports empty.
	if _, ok := rx.TryRecv(); !ok {
		fmt.Println("nothing yet")
	}

	// The sender transmits exactly one value.
	tx.Send(12)

	// Every duplicate now observes that value, as often as it likes.
	for range 2 {
		v, _ := rx.TryRecv()
		fmt.Println(v)
	}

	// Output:
	// nothing yet
	// 12
	// 12
}

func ExampleReceiver_Recv() {
	tx, rx := shotgun.New[string]()

	// Any number of consumers may wait on their own duplicates.
	var wg sync.WaitGroup
	for range 3 {
		r := rx.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := r.Recv(context.Background())
			if err != nil {
				panic(err)
			}
			fmt.Println(v)
		}()
	}

	tx.Send("ready")
	wg.Wait()

	// Output:
	// ready
	// ready
	// ready
}

func ExampleReceiver_Ready() {
	tx, rx := shotgun.New[int]()

	done := make(chan struct{})
	go func() {
		defer close(done)

		// Ready composes with select: the channel it returns is closed
		// when the value arrives.
		<-rx.Ready()
		v, _ := rx.TryRecv()
		fmt.Println("got", v)
	}()

	tx.Send(25)
	<-done

	// Output:
	// got 25
}
