package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/client/session"
	"github.com/dspetrov/hacksnooze/internal/client/tui/storylist"
)

var (
	postTitle  string
	postAuthor string
)

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "List the story feed, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runStories(cmd.Context(), e, cmd.OutOrStdout())
	},
}

var postCmd = &cobra.Command{
	Use:   "post <url>",
	Short: "Submit a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runPost(cmd.Context(), e, cmd.OutOrStdout(), models.StoryDraft{
			Author: postAuthor,
			Title:  postTitle,
			URL:    args[0],
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <story-id>",
	Short: "Delete one of your stories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runDelete(cmd.Context(), e, cmd.OutOrStdout(), args[0])
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <story-id>",
	Short: "Mark a story as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runFavorite(cmd.Context(), e, cmd.OutOrStdout(), args[0], true)
	},
}

var unfavoriteCmd = &cobra.Command{
	Use:   "unfavorite <story-id>",
	Short: "Remove a story from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runFavorite(cmd.Context(), e, cmd.OutOrStdout(), args[0], false)
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite stories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runFavorites(cmd.Context(), e, cmd.OutOrStdout())
	},
}

func init() {
	postCmd.Flags().StringVar(&postTitle, "title", "", "story title")
	postCmd.Flags().StringVar(&postAuthor, "author", "", "story author")
	_ = postCmd.MarkFlagRequired("title")
	_ = postCmd.MarkFlagRequired("author")

	rootCmd.AddCommand(storiesCmd, postCmd, deleteCmd, favoriteCmd, unfavoriteCmd, favoritesCmd)
}

func runStories(ctx context.Context, e *env, w io.Writer) error {
	list, err := e.stories.List(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, list.Stories)
	}

	printStories(w, list.Stories)
	return nil
}

func runPost(ctx context.Context, e *env, w io.Writer, draft models.StoryDraft) error {
	user, err := currentUser(ctx, e)
	if err != nil {
		return err
	}

	sess := session.New()
	sess.User = user

	story, err := e.stories.Add(ctx, sess.Stories, user, draft)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, story)
	}

	fmt.Fprintf(w, "posted %s (%s)\n", story.Title, story.StoryID)
	return nil
}

func runDelete(ctx context.Context, e *env, w io.Writer, storyID string) error {
	user, err := currentUser(ctx, e)
	if err != nil {
		return err
	}

	sess := session.New()
	sess.User = user

	if err := e.stories.Delete(ctx, sess.Stories, user, storyID); err != nil {
		return err
	}

	fmt.Fprintf(w, "deleted %s\n", storyID)
	return nil
}

func runFavorite(ctx context.Context, e *env, w io.Writer, storyID string, mark bool) error {
	user, err := currentUser(ctx, e)
	if err != nil {
		return err
	}

	if mark {
		err = e.stories.Favorite(ctx, user, storyID)
	} else {
		err = e.stories.Unfavorite(ctx, user, storyID)
	}
	if err != nil {
		return err
	}

	if mark {
		fmt.Fprintf(w, "favorited %s\n", storyID)
	} else {
		fmt.Fprintf(w, "unfavorited %s\n", storyID)
	}
	return nil
}

func runFavorites(ctx context.Context, e *env, w io.Writer) error {
	user, err := currentUser(ctx, e)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, user.Favorites)
	}

	printStories(w, user.Favorites)
	return nil
}

func printStories(w io.Writer, stories []models.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "no stories")
		return
	}
	for i, s := range stories {
		fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, s.Title, storylist.HostName(s.URL))
		fmt.Fprintf(w, "    %s  by %s, posted by %s\n", s.StoryID, s.Author, s.Username)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
