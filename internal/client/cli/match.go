package cli

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var errUsageLike = errors.New("usage: like <user id>")

func (a *App) like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageLike
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	res, err := a.api.Like(ctx, args[0])
	if err != nil {
		return err
	}

	matchID := res.GetMatch().GetId()

	switch res.GetOutcome() {
	case "new_match":
		fmt.Fprintf(a.out, "It's a match! (%s)\n", matchID)
	case "already_matched":
		fmt.Fprintf(a.out, "Already matched (%s)\n", matchID)
	default:
		fmt.Fprintln(a.out, "Liked")
	}
	return nil
}

func (a *App) matches(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	list, err := a.api.ListMatches(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No matches yet")
		return nil
	}
	for _, m := range list {
		fmt.Fprintf(a.out, "%s  %s  %s\n", m.GetId(), m.GetOtherUserId(), m.GetCreatedAt().AsTime().Format(time.RFC3339))
	}
	return nil
}

func (a *App) likes(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	list, err := a.api.ListLikes(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No likes yet")
		return nil
	}
	for _, l := range list {
		fmt.Fprintf(a.out, "%s  %s\n", l.GetLikeeId(), l.GetCreatedAt().AsTime().Format(time.RFC3339))
	}
	return nil
}

func (a *App) avatar(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.api.AvatarUploadURL(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "PUT your image to:\n%s\n(valid until %s)\n", u.GetUrl(), u.GetExpiresAt().AsTime().Format(time.RFC3339))
	return nil
}
