package sqlinline

// QAccumulateDailyProgress adds to the day's accumulator, creating the row
// with the goal snapshot on first write. The conflict branch deliberately
// leaves calories_goal untouched so the snapshot taken at first write sticks.
const QAccumulateDailyProgress = `--sql 9e35b0c7-48df-4a21-bc56-71e09d3f84a2
insert into daily_progress (id, user_id, date, calories_consumed, calories_goal, created_at, updated_at)
values ($1, $2, $3, $4, $5, now(), now())
on conflict (user_id, date) do update
set calories_consumed = daily_progress.calories_consumed + excluded.calories_consumed,
    updated_at = now();
`

const QSelectDailyProgress = `--sql 1a84f6d2-95c0-4e73-8b1f-46d27a90e3c5
select id, user_id, date, calories_consumed, calories_goal, created_at, updated_at
from daily_progress
where user_id = $1
  and date = $2
limit 1;
`

const QSelectRecentProgress = `--sql b6f23e09-d741-4a58-90c3-8e15fa7d62b0
select id, user_id, date, calories_consumed, calories_goal, created_at, updated_at
from daily_progress
where user_id = $1
order by date desc
limit $2;
`

const QSelectProgressDatesDesc = `--sql 4c07d9e5-16ba-4f82-ad30-92c6e48f1b75
select date
from daily_progress
where user_id = $1
order by date desc;
`
